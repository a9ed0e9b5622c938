package config

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the optional snapshot-persistence client. Nil when REDIS_ADDR
// is unset or the server turns out to be unreachable; callers treat nil as
// disabled.
var RedisClient *redis.Client

// InitRedis connects the client when REDIS_ADDR is configured.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		RedisClient = nil
		return
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       0,
	})
}

// RedisCtx returns the context used for startup Redis calls.
func RedisCtx() context.Context {
	return context.Background()
}
