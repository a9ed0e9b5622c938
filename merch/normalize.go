package merch

import (
	"menu.GO/square"
)

// Normalize joins raw catalog objects with inventory counts into the grouped
// merch model. Variations without a parent item or a positive price are
// dropped; items left with no variations are omitted entirely. Items appear
// in first-seen order among variations, variations keep source order.
func Normalize(objects []square.CatalogObject, inventory map[string]square.InventoryRecord) []Item {
	items := make(map[string]*square.ItemData)
	imageURLByID := make(map[string]string)
	var variations []square.CatalogObject

	for _, obj := range objects {
		switch obj.Type {
		case square.TypeItem:
			if obj.ItemData != nil {
				items[obj.ID] = obj.ItemData
			}
		case square.TypeItemVariation:
			if obj.ItemVariationData != nil {
				variations = append(variations, obj)
			}
		case square.TypeImage:
			if obj.ImageData != nil && obj.ImageData.URL != "" {
				imageURLByID[obj.ID] = obj.ImageData.URL
			}
		}
	}

	groups := make(map[string]*Item)
	var order []string

	for _, v := range variations {
		vData := v.ItemVariationData
		if vData.ItemID == "" {
			continue
		}
		if vData.PriceMoney == nil || vData.PriceMoney.Amount <= 0 {
			continue
		}

		parent := items[vData.ItemID]
		itemName := "Unknown item"
		if parent != nil && parent.Name != "" {
			itemName = parent.Name
		}

		label := vData.Name
		if label == "" {
			label = "Default"
		}

		imageURL := resolveImageURL(parent, vData, imageURLByID)

		variation := Variation{
			ID:         v.ID,
			Label:      label,
			PriceCents: vData.PriceMoney.Amount,
			Price:      float64(vData.PriceMoney.Amount) / 100,
			InStock:    MissingInventoryInStock,
		}
		if rec, ok := inventory[v.ID]; ok {
			qty := rec.Quantity
			variation.Quantity = &qty
			variation.InStock = rec.InStock
		}

		group, ok := groups[vData.ItemID]
		if !ok {
			group = &Item{
				ItemID:          vData.ItemID,
				Name:            itemName,
				SecondaryImages: galleryURLs(parent, imageURLByID),
			}
			groups[vData.ItemID] = group
			order = append(order, vData.ItemID)
		}
		if group.ImageURL == nil && imageURL != nil {
			group.ImageURL = imageURL
		}
		group.Variations = append(group.Variations, variation)
	}

	out := make([]Item, 0, len(order))
	for _, itemID := range order {
		group := groups[itemID]
		group.ItemSoldOut = soldOut(group.Variations)
		out = append(out, *group)
	}
	return out
}

// resolveImageURL prefers the parent item's first listed image, falling back
// to the variation's own first image. Unresolved ids yield nil.
func resolveImageURL(parent *square.ItemData, vData *square.ItemVariationData, urls map[string]string) *string {
	var imageID string
	if parent != nil && len(parent.ImageIDs) > 0 {
		imageID = parent.ImageIDs[0]
	} else if len(vData.ImageIDs) > 0 {
		imageID = vData.ImageIDs[0]
	}
	if imageID == "" {
		return nil
	}
	if url, ok := urls[imageID]; ok {
		return &url
	}
	return nil
}

// galleryURLs resolves the parent item's remaining image ids, in order.
func galleryURLs(parent *square.ItemData, urls map[string]string) []string {
	if parent == nil || len(parent.ImageIDs) < 2 {
		return nil
	}
	var out []string
	for _, id := range parent.ImageIDs[1:] {
		if url, ok := urls[id]; ok {
			out = append(out, url)
		}
	}
	return out
}

func soldOut(variations []Variation) bool {
	for _, v := range variations {
		if v.InStock {
			return false
		}
	}
	return true
}
