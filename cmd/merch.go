package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"menu.GO/config"
	"menu.GO/merch"
	"menu.GO/square"
)

var dumpFile string

func newMerchCache() *merch.Cache {
	client := square.NewClient(config.Square())
	return merch.NewCache(client, merch.DefaultTTL).WithRedis(config.RedisClient)
}

var merchRefreshCmd = &cobra.Command{
	Use:   "merch:refresh",
	Short: "Fetch and normalize the Square catalog once, reporting item counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		cache := newMerchCache()
		if err := cache.Refresh(ctx); err != nil {
			return fmt.Errorf("refresh failed: %w", err)
		}
		snap, _ := cache.Snapshot(ctx)
		variations := 0
		for _, item := range snap.Items {
			variations += len(item.Variations)
		}
		fmt.Printf("Refreshed %d items (%d variations) at %s\n",
			len(snap.Items), variations, snap.FetchedAt.Format(time.RFC3339))
		return nil
	},
}

var merchDumpCmd = &cobra.Command{
	Use:   "merch:dump",
	Short: "Dump the normalized catalog snapshot as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		cache := newMerchCache()
		snap, err := cache.Snapshot(ctx)
		if len(snap.Items) == 0 && err != nil {
			return fmt.Errorf("nothing to dump: %w", err)
		}
		b, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return err
		}
		if dumpFile == "" {
			fmt.Println(string(b))
			return nil
		}
		return os.WriteFile(dumpFile, b, 0644)
	},
}

func init() {
	merchDumpCmd.Flags().StringVarP(&dumpFile, "out", "o", "", "Write the snapshot to a file instead of stdout")
	rootCmd.AddCommand(merchRefreshCmd)
	rootCmd.AddCommand(merchDumpCmd)
}
