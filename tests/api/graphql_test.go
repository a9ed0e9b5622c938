package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	graphqlApi "menu.GO/api/graphql"
	"menu.GO/graphqlserver"
	"menu.GO/merch"
	"menu.GO/square"
)

func newGraphQLServer(t *testing.T, fix *squareFixture) *echo.Echo {
	t.Helper()
	client := square.NewClientWithBaseURL(squareTestConfig(), fix.srv.URL)
	svc := merch.NewService(merch.NewCache(client, merch.DefaultTTL))

	schema, err := graphqlserver.NewSchema(svc)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	e := echo.New()
	graphqlApi.RegisterGraphQLRoutesWithSchema(e, schema)
	return e
}

func TestGraphQL_MerchItems(t *testing.T) {
	fix := newSquareFixture(t)
	e := newGraphQLServer(t, fix)

	query := `{"query":"{ merchItems { id name itemSoldOut variations { id label priceCents inStock } } }"}`
	rec := postJSON(e, "/graphql", query)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			MerchItems []struct {
				ID          string `json:"id"`
				Name        string `json:"name"`
				ItemSoldOut bool   `json:"itemSoldOut"`
				Variations  []struct {
					ID         string  `json:"id"`
					Label      string  `json:"label"`
					PriceCents float64 `json:"priceCents"`
					InStock    bool    `json:"inStock"`
				} `json:"variations"`
			} `json:"merchItems"`
		} `json:"data"`
		Errors []interface{} `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, rec.Body.String())
	}
	if len(resp.Errors) != 0 {
		t.Fatalf("errors = %v", resp.Errors)
	}
	if len(resp.Data.MerchItems) != 1 {
		t.Fatalf("merchItems = %d, want 1", len(resp.Data.MerchItems))
	}
	item := resp.Data.MerchItems[0]
	if item.Name != "Classic Tee" || item.ItemSoldOut {
		t.Errorf("item = %+v", item)
	}
	if len(item.Variations) != 2 {
		t.Errorf("variations = %d, want 2", len(item.Variations))
	}
}

func TestGraphQL_MerchVariation(t *testing.T) {
	fix := newSquareFixture(t)
	e := newGraphQLServer(t, fix)

	query := `{"query":"{ merchVariation(id: \"VAR-S\") { id name priceCents } }"}`
	rec := postJSON(e, "/graphql", query)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Data struct {
			MerchVariation *struct {
				ID         string  `json:"id"`
				Name       string  `json:"name"`
				PriceCents float64 `json:"priceCents"`
			} `json:"merchVariation"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, rec.Body.String())
	}
	v := resp.Data.MerchVariation
	if v == nil || v.Name != "Classic Tee – S" || v.PriceCents != 2000 {
		t.Errorf("merchVariation = %+v", v)
	}
}

func TestGraphQL_MerchVariation_Unknown(t *testing.T) {
	fix := newSquareFixture(t)
	e := newGraphQLServer(t, fix)

	query := `{"query":"{ merchVariation(id: \"NOPE\") { id } }"}`
	rec := postJSON(e, "/graphql", query)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Data struct {
			MerchVariation *json.RawMessage `json:"merchVariation"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, rec.Body.String())
	}
	if resp.Data.MerchVariation != nil && string(*resp.Data.MerchVariation) != "null" {
		t.Errorf("merchVariation = %s, want null", *resp.Data.MerchVariation)
	}
}

func TestGraphQL_Playground(t *testing.T) {
	fix := newSquareFixture(t)
	e := newGraphQLServer(t, fix)

	req := httptest.NewRequest(http.MethodGet, "/playground", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
