package square

// Catalog object types requested from the list endpoint.
const (
	TypeItem          = "ITEM"
	TypeItemVariation = "ITEM_VARIATION"
	TypeImage         = "IMAGE"
)

// Money is a minor-currency amount (cents for USD).
type Money struct {
	Amount   int64  `json:"amount" mapstructure:"amount"`
	Currency string `json:"currency" mapstructure:"currency"`
}

// CatalogObject is the tagged union returned by the catalog list endpoint.
// Exactly one of the *Data fields is set, matching Type.
type CatalogObject struct {
	ID                string             `json:"id" mapstructure:"id"`
	Type              string             `json:"type" mapstructure:"type"`
	ItemData          *ItemData          `json:"item_data,omitempty" mapstructure:"item_data"`
	ItemVariationData *ItemVariationData `json:"item_variation_data,omitempty" mapstructure:"item_variation_data"`
	ImageData         *ImageData         `json:"image_data,omitempty" mapstructure:"image_data"`
}

type ItemData struct {
	Name     string   `json:"name" mapstructure:"name"`
	ImageIDs []string `json:"image_ids,omitempty" mapstructure:"image_ids"`
}

type ItemVariationData struct {
	ItemID     string   `json:"item_id" mapstructure:"item_id"`
	Name       string   `json:"name" mapstructure:"name"`
	PriceMoney *Money   `json:"price_money,omitempty" mapstructure:"price_money"`
	ImageIDs   []string `json:"image_ids,omitempty" mapstructure:"image_ids"`
}

type ImageData struct {
	URL string `json:"url" mapstructure:"url"`
}

// InventoryRecord is the count state for one variation at the configured
// location. Absence of a record downstream means "treat as in stock".
type InventoryRecord struct {
	Quantity float64
	InStock  bool
}
