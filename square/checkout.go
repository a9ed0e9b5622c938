package square

import (
	"context"
	"net/http"
)

// OrderLineItem is one purchasable line of the hosted checkout order.
// Quantity is a string on the wire.
type OrderLineItem struct {
	Name            string `json:"name"`
	Quantity        string `json:"quantity"`
	BasePriceMoney  Money  `json:"base_price_money"`
	CatalogObjectID string `json:"catalog_object_id,omitempty"`
}

type paymentLinkOrder struct {
	LocationID string          `json:"location_id"`
	LineItems  []OrderLineItem `json:"line_items"`
}

type checkoutOptions struct {
	RedirectURL string `json:"redirect_url,omitempty"`
}

type createPaymentLinkRequest struct {
	IdempotencyKey  string           `json:"idempotency_key"`
	Order           paymentLinkOrder `json:"order"`
	CheckoutOptions checkoutOptions  `json:"checkout_options"`
}

type createPaymentLinkResponse struct {
	PaymentLink struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	} `json:"payment_link"`
}

// CreatePaymentLink requests a hosted payment-link session for the given line
// items and returns its URL. Square dedupes on the idempotency key, so a
// retried key yields the same link.
func (c *Client) CreatePaymentLink(ctx context.Context, idempotencyKey string, lineItems []OrderLineItem) (string, error) {
	req := createPaymentLinkRequest{
		IdempotencyKey: idempotencyKey,
		Order: paymentLinkOrder{
			LocationID: c.cfg.LocationID,
			LineItems:  lineItems,
		},
		CheckoutOptions: checkoutOptions{RedirectURL: c.cfg.RedirectURL},
	}
	var resp createPaymentLinkResponse
	if err := c.do(ctx, http.MethodPost, "/v2/online-checkout/payment-links", req, &resp); err != nil {
		return "", err
	}
	return resp.PaymentLink.URL, nil
}
