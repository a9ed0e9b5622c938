//go:build !cli
// +build !cli

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"menu.GO/api"
	_ "menu.GO/api/checkout"
	_ "menu.GO/api/graphql"
	_ "menu.GO/api/merch"
	_ "menu.GO/api/music"
	"menu.GO/checkout"
	"menu.GO/config"
	"menu.GO/cron"
	"menu.GO/cron/jobs"
	_ "menu.GO/custom"
	"menu.GO/merch"
	"menu.GO/music"
	"menu.GO/square"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured, snapshot persistence disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, snapshot persistence disabled."
		}
	}
	log.Println(redisStatus)

	squareClient := square.NewClient(config.Square())
	merchCache := merch.NewCache(squareClient, merch.DefaultTTL).WithRedis(config.RedisClient)
	merchSvc := merch.NewService(merchCache)

	deps := &api.Deps{
		Merch:    merchSvc,
		Checkout: checkout.NewAssembler(merchSvc, squareClient),
		Music:    music.NewClient(config.Spotify()),
	}

	e := echo.New()
	e.Debug = config.AppConfig.Debug
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	api.RegisterGET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	apiGroup := e.Group("/api")
	api.ApplyModules(apiGroup, deps)
	api.ApplyRoutes(e, deps)

	// Static frontend; unknown paths fall through to index.html
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  "public",
		HTML5: true,
	}))

	// Cache warm-up: first visitor should not pay the Square round trip
	jobs.SetMerchCache(merchCache)
	cron.Register("merchwarm", "@every 5m", jobs.MerchWarmJob)
	if os.Getenv("CRON_ENABLED") == "true" {
		c := cron.StartCron()
		defer c.Stop()
		log.Println("Cron scheduler started.")
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		if err := merchCache.RefreshIfStale(ctx); err != nil {
			log.Printf("Initial catalog refresh failed: %v", err)
		}
	}()

	port := config.AppConfig.Port
	if port == "" {
		port = "3000"
	}
	log.Printf("MENU site running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
