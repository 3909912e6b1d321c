package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

const chainListText = `Major chains supported by the DeFiLlama APIs
(chain filters are case-insensitive; this list is not exhaustive):

- Ethereum
- Solana
- BSC
- Tron
- Base
- Arbitrum
- Polygon
- Avalanche
- Optimism
- Sui

Use get_chain_tvl for the live, complete list with current TVL.`

const endpointCatalogueText = `Upstream endpoints behind the tools:

TVL API (api.llama.fi):
- GET /protocols          all protocols with current TVL  -> get_protocols
- GET /tvl/{slug}         one protocol's TVL (bare number) -> get_chain_tvl
- GET /v2/chains          current TVL per chain            -> get_chain_tvl

Coins API (coins.llama.fi):
- GET /prices/current/{coins}           -> get_current_prices
- GET /prices/historical/{ts}/{coins}   -> get_historical_prices

Yields API (yields.llama.fi):
- GET /pools        all yield pools     -> get_yield_pools, find_best_strategies
- GET /chart/{id}   pool APY/TVL series -> get_pool_chart

Responses are cached; repeated calls within the cache TTL do not hit
upstream.`

func (s *Server) registerResources() {
	s.mcp.AddResource(
		mcp.NewResource("chains://list", "Supported Chains",
			mcp.WithResourceDescription("Major blockchain names accepted by chain filters"),
			mcp.WithMIMEType("text/plain"),
		),
		staticResource("chains://list", chainListText),
	)

	s.mcp.AddResource(
		mcp.NewResource("api://endpoints", "API Endpoint Catalogue",
			mcp.WithResourceDescription("The DeFiLlama endpoints each tool is backed by"),
			mcp.WithMIMEType("text/plain"),
		),
		staticResource("api://endpoints", endpointCatalogueText),
	)
}

func staticResource(uri, text string) func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: "text/plain",
				Text:     text,
			},
		}, nil
	}
}
