package core

import (
	"context"

	"github.com/llamafetch/llama-mcp/api"
	"github.com/llamafetch/llama-mcp/cache"
	"github.com/llamafetch/llama-mcp/config"
	"github.com/llamafetch/llama-mcp/fetcher"
	"github.com/llamafetch/llama-mcp/metrics"
	"github.com/llamafetch/llama-mcp/prices"
	"github.com/llamafetch/llama-mcp/protocols"
	"github.com/llamafetch/llama-mcp/yields"
)

// App holds the wired services the MCP surface is built from
type App struct {
	Prices    *prices.Service
	Yields    *yields.Service
	Protocols *protocols.Service
}

// Setup creates and registers all services
func Setup(ctx context.Context, cfg *config.Config) (*Registry, *App, error) {
	registry := NewRegistry()

	// Cache first: everything downstream reads through it
	cacheService := cache.NewService(cfg.Cache)
	registry.Register(cacheService)

	// One shared fetch client; services label their own requests
	client := fetcher.NewClient(cfg.Fetcher, cacheService, metrics.NewRecorder())
	registry.Register(client)

	pricesService := prices.NewService(client, cfg)
	registry.Register(pricesService)

	yieldsService := yields.NewService(client, cfg)
	registry.Register(yieldsService)

	protocolsService := protocols.NewService(client, cfg)
	registry.Register(protocolsService)

	// Operational HTTP surface (health + metrics); port 0 disables it
	if cfg.OpsPort > 0 {
		server := api.New(cfg.OpsPort, pricesService, yieldsService, protocolsService, cacheService)
		registry.Register(server)
	}

	app := &App{
		Prices:    pricesService,
		Yields:    yieldsService,
		Protocols: protocolsService,
	}
	return registry, app, nil
}
