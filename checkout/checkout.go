package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"menu.GO/merch"
	"menu.GO/square"
)

var (
	// ErrEmptyCart means the submitted cart had no lines at all.
	ErrEmptyCart = errors.New("checkout: cart is empty")
	// ErrNoValidItems means every line was dropped during validation.
	ErrNoValidItems = errors.New("checkout: no valid cart items")
	// ErrSessionFailed means the payment-link provider rejected the session.
	ErrSessionFailed = errors.New("checkout: payment link creation failed")
)

const currency = "USD"

// Quantity accepts both JSON numbers and numeric strings, the way browser
// carts actually submit them. Anything unparseable coerces to zero and the
// line is dropped downstream.
type Quantity int

func (q *Quantity) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*q = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*q = 0
		return nil
	}
	*q = Quantity(int(n))
	return nil
}

// CartLine is one client-submitted cart entry. Nothing here is trusted:
// price and name are re-derived server-side by id. Unknown fields (a spoofed
// price, say) are discarded by the JSON decoder.
type CartLine struct {
	ID  string   `json:"id"`
	Qty Quantity `json:"qty"`
}

// Request is the checkout endpoint body.
type Request struct {
	Items []CartLine `json:"items"`
	// IdempotencyKey lets a client dedupe double-submissions; Square returns
	// the same payment link for a repeated key. Optional.
	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}

// Lookup resolves a variation id to server-authoritative name, price and
// stock state. *merch.Service satisfies it.
type Lookup interface {
	FindVariationInStock(ctx context.Context, id string) (*merch.FlatInfo, bool, error)
}

// PaymentLinker creates the hosted payment session. *square.Client satisfies it.
type PaymentLinker interface {
	CreatePaymentLink(ctx context.Context, idempotencyKey string, lineItems []square.OrderLineItem) (string, error)
}

// Assembler validates carts against the lookup service and turns them into
// payment-link sessions. Stateless: nothing is persisted either way.
type Assembler struct {
	lookup   Lookup
	payments PaymentLinker
}

func NewAssembler(lookup Lookup, payments PaymentLinker) *Assembler {
	return &Assembler{lookup: lookup, payments: payments}
}

// BuildCheckoutSession resolves the cart into priced line items and requests
// a payment link. Invalid lines are dropped individually (logged server-side);
// the request only fails outright when nothing survives.
func (a *Assembler) BuildCheckoutSession(ctx context.Context, req *Request) (string, error) {
	if req == nil || len(req.Items) == 0 {
		return "", ErrEmptyCart
	}

	var lineItems []square.OrderLineItem
	for _, line := range req.Items {
		qty := int(line.Qty)
		if line.ID == "" || qty <= 0 {
			log.Printf("checkout: skipping malformed cart line id=%q qty=%d", line.ID, qty)
			continue
		}

		info, inStock, err := a.lookup.FindVariationInStock(ctx, line.ID)
		if errors.Is(err, merch.ErrVariationNotFound) {
			log.Printf("checkout: skipping unknown merch id %q", line.ID)
			continue
		}
		if err != nil {
			return "", err
		}
		if !inStock {
			log.Printf("checkout: refusing out-of-stock merch id %q", line.ID)
			continue
		}

		lineItems = append(lineItems, square.OrderLineItem{
			Name:     info.Name,
			Quantity: strconv.Itoa(qty),
			BasePriceMoney: square.Money{
				Amount:   info.PriceCents,
				Currency: currency,
			},
			CatalogObjectID: info.ID,
		})
	}

	if len(lineItems) == 0 {
		return "", ErrNoValidItems
	}

	key := req.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	}

	url, err := a.payments.CreatePaymentLink(ctx, key, lineItems)
	if err != nil {
		log.Printf("checkout: payment link creation failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrSessionFailed, err)
	}
	return url, nil
}
