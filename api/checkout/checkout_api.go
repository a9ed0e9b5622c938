package checkout

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"menu.GO/api"
	checkoutService "menu.GO/checkout"
)

func init() {
	api.RegisterModule(RegisterCheckoutRoutes)
}

// RegisterCheckoutRoutes mounts the payment-link checkout under /api.
func RegisterCheckoutRoutes(g *echo.Group, deps *api.Deps) {
	// POST /api/checkout – body {items:[{id,qty}], idempotencyKey?} → {url}
	g.POST("/checkout", func(c echo.Context) error {
		var req checkoutService.Request
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Cart is empty."})
		}

		url, err := deps.Checkout.BuildCheckoutSession(c.Request().Context(), &req)
		switch {
		case err == nil:
			return c.JSON(http.StatusOK, echo.Map{"url": url})
		case errors.Is(err, checkoutService.ErrEmptyCart):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Cart is empty."})
		case errors.Is(err, checkoutService.ErrNoValidItems):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "No valid cart items."})
		case errors.Is(err, checkoutService.ErrSessionFailed):
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "Unable to create checkout link."})
		default:
			// Provider internals never reach the client.
			log.Printf("checkout api: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Unable to create checkout link."})
		}
	})
}
