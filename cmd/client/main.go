package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"FoodTracker/internal/cli/commands"
	"FoodTracker/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// env + flags; клиенту нужны BaseURL, ENABLE_HTTPS и TOKEN_FILE
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion(cfg)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(commands.Dispatch(ctx, cfg, flag.Args()))
}

func printVersion(cfg *config.Config) {
	fmt.Printf("FoodTracker CLI (ftcli)\nVersion: %s\nBuild date: %s\nServer: %s\n", version, buildDate, cfg.ServerURL)
}
