package merch

import "time"

// MissingInventoryInStock is the policy for variations with no inventory
// record at the configured location: treat them as purchasable. Deployments
// without a location id run entirely on this default.
const MissingInventoryInStock = true

// Variation is one purchasable option of an item (size, color). ID is the
// source variation id and is globally unique across the catalog.
type Variation struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	PriceCents int64    `json:"priceCents"`
	Price      float64  `json:"price"`
	Quantity   *float64 `json:"quantity"`
	InStock    bool     `json:"inStock"`
}

// Item is a grouped merch entry as the storefront consumes it.
// Invariant: Variations is never empty; ItemSoldOut is true iff no variation
// is in stock.
type Item struct {
	ItemID          string      `json:"id"`
	Name            string      `json:"name"`
	ImageURL        *string     `json:"imageUrl"`
	SecondaryImages []string    `json:"secondaryImages,omitempty"`
	ItemSoldOut     bool        `json:"itemSoldOut"`
	Variations      []Variation `json:"variations"`
}

// Snapshot is one immutable view of the normalized catalog. A refresh
// replaces the whole snapshot; nothing mutates it in place.
type Snapshot struct {
	Items     []Item    `json:"items"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// FlatInfo is the flattened lookup result for a single variation id.
type FlatInfo struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	PriceCents int64   `json:"priceCents"`
	Price      float64 `json:"price"`
	ImageURL   *string `json:"imageUrl"`
}
