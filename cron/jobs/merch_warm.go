package jobs

import (
	"context"
	"log"
	"time"

	"menu.GO/merch"
)

var merchCache *merch.Cache

// SetMerchCache wires the catalog cache the warm job refreshes. Called once
// at startup before the scheduler starts.
func SetMerchCache(c *merch.Cache) {
	merchCache = c
}

// MerchWarmJob force-refreshes the catalog cache so visitor reads stay inside
// the TTL window. Read-triggered refresh remains the correctness mechanism;
// this only keeps the warm path warm.
func MerchWarmJob(args ...string) {
	if merchCache == nil {
		log.Println("cron: merch warm job skipped, cache not wired")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := merchCache.Refresh(ctx); err != nil {
		log.Printf("cron: merch warm refresh failed: %v", err)
		return
	}
	snap, _ := merchCache.Snapshot(ctx)
	log.Printf("cron: merch warm refresh ok, %d items", len(snap.Items))
}
