package models

import "menu.GO/merch"

// GraphQL view models. graphql-go matches schema fields to these struct
// fields case-insensitively (UseFieldResolvers). Cents ride as Float because
// graphql-go's Int is int32.

type MerchItem struct {
	ID              string
	Name            string
	ImageURL        *string
	SecondaryImages *[]string
	ItemSoldOut     bool
	Variations      []MerchVariation
}

type MerchVariation struct {
	ID         string
	Label      string
	PriceCents float64
	Price      float64
	Quantity   *float64
	InStock    bool
}

type FlatMerch struct {
	ID         string
	Name       string
	PriceCents float64
	Price      float64
	ImageURL   *string
}

// FromItems converts the merch domain model to the GraphQL view.
func FromItems(items []merch.Item) []MerchItem {
	out := make([]MerchItem, 0, len(items))
	for _, item := range items {
		mi := MerchItem{
			ID:          item.ItemID,
			Name:        item.Name,
			ImageURL:    item.ImageURL,
			ItemSoldOut: item.ItemSoldOut,
			Variations:  make([]MerchVariation, 0, len(item.Variations)),
		}
		if len(item.SecondaryImages) > 0 {
			imgs := item.SecondaryImages
			mi.SecondaryImages = &imgs
		}
		for _, v := range item.Variations {
			mi.Variations = append(mi.Variations, MerchVariation{
				ID:         v.ID,
				Label:      v.Label,
				PriceCents: float64(v.PriceCents),
				Price:      v.Price,
				Quantity:   v.Quantity,
				InStock:    v.InStock,
			})
		}
		out = append(out, mi)
	}
	return out
}

// FromFlatInfo converts a lookup result to the GraphQL view.
func FromFlatInfo(info *merch.FlatInfo) *FlatMerch {
	if info == nil {
		return nil
	}
	return &FlatMerch{
		ID:         info.ID,
		Name:       info.Name,
		PriceCents: float64(info.PriceCents),
		Price:      info.Price,
		ImageURL:   info.ImageURL,
	}
}
