// Package mcpserver exposes the price, yield and protocol services as an
// MCP server over stdio
package mcpserver

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/llamafetch/llama-mcp/prices"
	"github.com/llamafetch/llama-mcp/protocols"
	"github.com/llamafetch/llama-mcp/query"
	"github.com/llamafetch/llama-mcp/yields"
)

const (
	serverName    = "DeFiLlama MCP Server"
	serverVersion = "1.0.0"
)

// PricesAPI is the slice of the prices service the tool handlers need
type PricesAPI interface {
	CurrentPrices(ctx context.Context, coins, searchWidth string) ([]prices.CoinPrice, error)
	HistoricalPrices(ctx context.Context, timestamp, coins, searchWidth string) ([]prices.CoinPrice, int64, error)
}

// YieldsAPI is the slice of the yields service the tool handlers need
type YieldsAPI interface {
	Pools(ctx context.Context, q yields.PoolsQuery) ([]query.Record, error)
	PoolChart(ctx context.Context, poolID string) ([]yields.ChartPoint, error)
}

// ProtocolsAPI is the slice of the protocols service the tool handlers need
type ProtocolsAPI interface {
	Protocols(ctx context.Context, q protocols.ProtocolsQuery) ([]query.Record, error)
	ProtocolTVL(ctx context.Context, slug string) (float64, error)
	Chains(ctx context.Context) ([]query.Record, error)
}

// Server wires the services into MCP tools, resources and prompts
type Server struct {
	mcp       *server.MCPServer
	prices    PricesAPI
	yields    YieldsAPI
	protocols ProtocolsAPI
}

// New creates the MCP server and registers the tool surface
func New(pricesAPI PricesAPI, yieldsAPI YieldsAPI, protocolsAPI ProtocolsAPI) *Server {
	s := &Server{
		mcp: server.NewMCPServer(serverName, serverVersion,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
			server.WithPromptCapabilities(false),
			server.WithRecovery(),
		),
		prices:    pricesAPI,
		yields:    yieldsAPI,
		protocols: protocolsAPI,
	}

	s.mcp.AddTool(ToolGetCurrentPrices, s.handleGetCurrentPrices)
	s.mcp.AddTool(ToolGetHistoricalPrices, s.handleGetHistoricalPrices)
	s.mcp.AddTool(ToolGetYieldPools, s.handleGetYieldPools)
	s.mcp.AddTool(ToolGetPoolChart, s.handleGetPoolChart)
	s.mcp.AddTool(ToolGetProtocols, s.handleGetProtocols)
	s.mcp.AddTool(ToolGetChainTVL, s.handleGetChainTVL)
	s.mcp.AddTool(ToolFindBestStrategies, s.handleFindBestStrategies)

	s.registerResources()
	s.registerPrompts()

	return s
}

// ServeStdio blocks serving MCP requests over stdin/stdout until the
// client disconnects or ctx is cancelled. Logs go to stderr; stdout is
// the transport
func (s *Server) ServeStdio(ctx context.Context) error {
	return server.NewStdioServer(s.mcp).Listen(ctx, os.Stdin, os.Stdout)
}
