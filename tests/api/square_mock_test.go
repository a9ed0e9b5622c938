package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"menu.GO/api"
	checkoutApi "menu.GO/api/checkout"
	merchApi "menu.GO/api/merch"
	"menu.GO/checkout"
	"menu.GO/config"
	"menu.GO/merch"
	"menu.GO/square"
)

// squareFixture is an httptest stand-in for the Square API: one "Classic Tee"
// item with an in-stock S and a sold-out L, plus a payment-link endpoint.
type squareFixture struct {
	srv           *httptest.Server
	catalogCalls  int32
	paymentCalls  int32
	lastPaymentRq map[string]interface{}
}

func newSquareFixture(t *testing.T) *squareFixture {
	t.Helper()
	f := &squareFixture{}
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/catalog/list", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.catalogCalls, 1)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"objects": []map[string]interface{}{
				{"id": "ITEM-TEE", "type": "ITEM", "item_data": map[string]interface{}{
					"name": "Classic Tee", "image_ids": []string{"IMG-TEE"},
				}},
				{"id": "IMG-TEE", "type": "IMAGE", "image_data": map[string]interface{}{
					"url": "https://cdn.example/tee.png",
				}},
				{"id": "VAR-S", "type": "ITEM_VARIATION", "item_variation_data": map[string]interface{}{
					"item_id": "ITEM-TEE", "name": "S",
					"price_money": map[string]interface{}{"amount": 2000, "currency": "USD"},
				}},
				{"id": "VAR-L", "type": "ITEM_VARIATION", "item_variation_data": map[string]interface{}{
					"item_id": "ITEM-TEE", "name": "L",
					"price_money": map[string]interface{}{"amount": 2000, "currency": "USD"},
				}},
			},
		})
	})
	mux.HandleFunc("/v2/inventory/counts/batch-retrieve", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"counts": []map[string]interface{}{
				{"catalog_object_id": "VAR-S", "state": "IN_STOCK", "quantity": "7"},
				{"catalog_object_id": "VAR-L", "state": "IN_STOCK", "quantity": "0"},
			},
		})
	})
	mux.HandleFunc("/v2/online-checkout/payment-links", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.paymentCalls, 1)
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		f.lastPaymentRq = body
		json.NewEncoder(w).Encode(map[string]interface{}{
			"payment_link": map[string]interface{}{"id": "PL1", "url": "https://square.link/u/test"},
		})
	})
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func squareTestConfig() *config.SquareConfig {
	return &config.SquareConfig{
		AccessToken: "test-token",
		Environment: "sandbox",
		LocationID:  "LOC-TEST",
		RedirectURL: "https://menuband.com",
		Timeout:     5 * time.Second,
	}
}

func newTestServer(t *testing.T, f *squareFixture) *echo.Echo {
	t.Helper()
	client := square.NewClientWithBaseURL(squareTestConfig(), f.srv.URL)
	svc := merch.NewService(merch.NewCache(client, merch.DefaultTTL))
	deps := &api.Deps{
		Merch:    svc,
		Checkout: checkout.NewAssembler(svc, client),
	}

	e := echo.New()
	g := e.Group("/api")
	merchApi.RegisterMerchRoutes(g, deps)
	checkoutApi.RegisterCheckoutRoutes(g, deps)
	return e
}
