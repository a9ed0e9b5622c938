package merch

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"menu.GO/api"
	merchService "menu.GO/merch"
)

func init() {
	api.RegisterModule(RegisterMerchRoutes)
}

// RegisterMerchRoutes mounts the public merch listing under /api.
func RegisterMerchRoutes(g *echo.Group, deps *api.Deps) {
	// GET /api/merch – grouped items with variations and inventory state
	g.GET("/merch", func(c echo.Context) error {
		items, err := deps.Merch.ListItems(c.Request().Context())
		if err != nil {
			log.Printf("merch api: listing failed: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Unable to load merch right now."})
		}
		if items == nil {
			items = []merchService.Item{}
		}
		return c.JSON(http.StatusOK, items)
	})
}
