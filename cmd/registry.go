package cmd

import (
	"sync"

	"github.com/spf13/cobra"

	"menu.GO/core/registry"
)

var cmdMu sync.Mutex

func registered() []*cobra.Command {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCmd); ok && v != nil {
		return v.([]*cobra.Command)
	}
	return nil
}

// Register queues a command for the root CLI. Call from init() in custom
// packages; panics once Apply has locked the registry.
func Register(c *cobra.Command) {
	cmdMu.Lock()
	defer cmdMu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		panic("cmd/registry: locked (register only during init before Apply)")
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCmd, append(registered(), c))
}

// Apply attaches every queued command to the root and locks the registry.
func Apply() {
	cmdMu.Lock()
	defer cmdMu.Unlock()
	for _, c := range registered() {
		rootCmd.AddCommand(c)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
}
