package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(defaultConfigFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("invalid configuration: %v", err)
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	config.Bind(flag.CommandLine)
	flag.Parse()

	life, err := newSession(config)
	if err != nil {
		log.Fatalf("failed to start session: %v", err)
	}
	displayGameInfo(config, life)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = runFrontend(ctx, life, config)
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Println("\n🛑 Shutting down gracefully...")
	case err != nil:
		fmt.Println("Session ended with error:", err)
	}

	if err = saveSession(life, config.SavePath); err != nil {
		fmt.Println("Error saving grid:", err)
	}
	displayFinalStats(life)
}
