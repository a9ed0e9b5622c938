package square

import (
	"context"
	"net/http"
	"net/url"
)

type listCatalogResponse struct {
	Objects []map[string]interface{} `json:"objects"`
	Cursor  string                   `json:"cursor"`
}

// ListCatalogObjects fetches every item, variation and image from the catalog,
// following the cursor until the provider stops returning one. All pages are
// concatenated before returning.
func (c *Client) ListCatalogObjects(ctx context.Context) ([]CatalogObject, error) {
	var all []CatalogObject
	cursor := ""
	for {
		q := url.Values{}
		q.Set("types", TypeItem+","+TypeItemVariation+","+TypeImage)
		if cursor != "" {
			q.Set("cursor", cursor)
		}

		var page listCatalogResponse
		if err := c.do(ctx, http.MethodGet, "/v2/catalog/list?"+q.Encode(), nil, &page); err != nil {
			return nil, err
		}
		objs, err := DecodeCatalogObjects(page.Objects)
		if err != nil {
			return nil, err
		}
		all = append(all, objs...)

		if page.Cursor == "" {
			break
		}
		cursor = page.Cursor
	}
	return all, nil
}
