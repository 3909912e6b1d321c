package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/llamafetch/llama-mcp/config"
	"github.com/llamafetch/llama-mcp/core"
	"github.com/llamafetch/llama-mcp/mcpserver"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	// stdout is the MCP transport; all logging goes to stderr (the
	// stdlib default)
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	registry, app, err := core.Setup(ctx, cfg)
	if err != nil {
		log.Fatal("Error setting up services:", err)
	}

	if err := registry.StartAll(ctx); err != nil {
		log.Fatal("Failed to start services:", err)
	}
	defer registry.StopAll()

	server := mcpserver.New(app.Prices, app.Yields, app.Protocols)

	log.Println("MCP server listening on stdio")
	if err := server.ServeStdio(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("MCP server error: %v", err)
	}
	log.Println("Shutting down")
}
