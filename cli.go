//go:build cli
// +build cli

package main

import (
	_ "menu.GO/custom"

	"menu.GO/cmd"
	"menu.GO/config"
)

func main() {
	config.LoadEnv()
	config.InitRedis()
	cmd.Execute()
}
