package music

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"menu.GO/api"
	"menu.GO/config"
)

func init() {
	api.RegisterModule(RegisterMusicRoutes)
}

// RegisterMusicRoutes mounts the latest-release feed under /api.
func RegisterMusicRoutes(g *echo.Group, deps *api.Deps) {
	// GET /api/music/latest – the artist's newest single or album
	g.GET("/music/latest", func(c echo.Context) error {
		release, err := deps.Music.LatestRelease(c.Request().Context(), config.Spotify().ArtistID)
		if err != nil {
			log.Printf("music api: latest release: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Unable to fetch latest release"})
		}
		if release == nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No releases found"})
		}
		return c.JSON(http.StatusOK, release)
	})
}
