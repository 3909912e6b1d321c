package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/llamafetch/llama-mcp/format"
	"github.com/llamafetch/llama-mcp/protocols"
	"github.com/llamafetch/llama-mcp/yields"
)

func (s *Server) handleGetCurrentPrices(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coins, err := req.RequireString("coins")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entries, err := s.prices.CurrentPrices(ctx, coins, req.GetString("search_width", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("fetching current prices: %v", err)), nil
	}

	return mcp.NewToolResultText(format.Prices(entries)), nil
}

func (s *Server) handleGetHistoricalPrices(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	timestamp, err := req.RequireString("timestamp")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	coins, err := req.RequireString("coins")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entries, ts, err := s.prices.HistoricalPrices(ctx, timestamp, coins, req.GetString("search_width", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("fetching historical prices: %v", err)), nil
	}

	text := fmt.Sprintf("Prices at %s:\n%s", format.UTCTime(ts), format.Prices(entries))
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleGetYieldPools(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	q := yields.PoolsQuery{
		MinTVL:    req.GetFloat("min_tvl", 0),
		MinAPY:    req.GetFloat("min_apy", 0),
		MaxAPY:    req.GetFloat("max_apy", 0),
		Chains:    splitList(req.GetString("chains", "")),
		Protocols: splitList(req.GetString("protocols", "")),
		Symbols:   splitList(req.GetString("symbols", "")),
		SortBy:    req.GetString("sort_by", ""),
		Limit:     req.GetInt("limit", 0),
	}

	records, err := s.yields.Pools(ctx, q)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("fetching yield pools: %v", err)), nil
	}

	return mcp.NewToolResultText(format.Pools(records)), nil
}

func (s *Server) handleGetPoolChart(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	poolID, err := req.RequireString("pool_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	points, err := s.yields.PoolChart(ctx, poolID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("fetching pool chart: %v", err)), nil
	}

	return mcp.NewToolResultText(format.ChartPoints(points, req.GetInt("tail", 30))), nil
}

func (s *Server) handleGetProtocols(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	q := protocols.ProtocolsQuery{
		MinTVL:     req.GetFloat("min_tvl", 0),
		Chains:     splitList(req.GetString("chains", "")),
		Categories: splitList(req.GetString("category", "")),
		Limit:      req.GetInt("limit", 20),
	}

	records, err := s.protocols.Protocols(ctx, q)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("fetching protocols: %v", err)), nil
	}

	return mcp.NewToolResultText(format.Protocols(records)), nil
}

func (s *Server) handleGetChainTVL(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if slug := strings.TrimSpace(req.GetString("protocol", "")); slug != "" {
		tvl, err := s.protocols.ProtocolTVL(ctx, slug)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("fetching protocol TVL: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s TVL: %s", slug, format.HumanUSD(tvl))), nil
	}

	records, err := s.protocols.Chains(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("fetching chain TVL: %v", err)), nil
	}

	return mcp.NewToolResultText(format.Chains(records)), nil
}

func (s *Server) handleFindBestStrategies(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile := yields.ParseRiskProfile(req.GetString("risk_profile", ""))

	limit := req.GetInt("limit", 10)
	minTVL := req.GetFloat("min_tvl", 1000000)

	// Score over the full filtered set; the limit applies to ranked output
	records, err := s.yields.Pools(ctx, yields.PoolsQuery{
		MinTVL: minTVL,
		Chains: splitList(req.GetString("chains", "")),
		Limit:  -1,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("fetching yield pools: %v", err)), nil
	}

	scored := yields.ScoreStrategies(records, profile)
	if limit > 0 && limit < len(scored) {
		scored = scored[:limit]
	}

	return mcp.NewToolResultText(format.Strategies(scored, profile)), nil
}

// splitList parses a comma-separated tool argument into trimmed values
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	var values []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
