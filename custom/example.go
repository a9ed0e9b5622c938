package custom

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"menu.GO/api"
	"menu.GO/cmd"
	"menu.GO/cron"
	gqlregistry "menu.GO/graphql/registry"
)

// Registers one hook of each kind so site-specific additions have a template
// to copy from: a GraphQL extension resolver, a CLI command, a cron job and a
// plain HTTP route.
func init() {
	gqlregistry.Register("ping", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return map[string]string{"pong": "ok"}, nil
	})

	cmd.Register(&cobra.Command{
		Use:   "custom:hello",
		Short: "Example custom command",
		Run: func(c *cobra.Command, args []string) {
			log.Println("Hello from the custom command")
		},
	})

	cron.Register("heartbeat", "@every 1m", func(args ...string) {
		log.Println("custom: heartbeat")
	})

	api.RegisterGET("/custom/ping", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"pong": "ok"})
	})
}
