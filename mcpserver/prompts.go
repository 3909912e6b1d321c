package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(
		mcp.NewPrompt("analyze_defi_portfolio",
			mcp.WithPromptDescription("Analyze current prices and yield context for a set of tokens"),
			mcp.WithArgument("tokens",
				mcp.ArgumentDescription("Comma-separated token identifiers to analyze"),
				mcp.RequiredArgument(),
			),
		),
		s.handleAnalyzePortfolioPrompt,
	)

	s.mcp.AddPrompt(
		mcp.NewPrompt("find_yield_opportunities",
			mcp.WithPromptDescription("Find attractive yield pools matching a risk tolerance"),
			mcp.WithArgument("min_apy",
				mcp.ArgumentDescription("Minimum APY in percent (default 5)"),
			),
			mcp.WithArgument("max_risk",
				mcp.ArgumentDescription("Risk tolerance: conservative, balanced or aggressive"),
			),
		),
		s.handleYieldOpportunitiesPrompt,
	)
}

func (s *Server) handleAnalyzePortfolioPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	tokens := req.Params.Arguments["tokens"]
	if tokens == "" {
		return nil, fmt.Errorf("tokens argument is required")
	}

	text := fmt.Sprintf(
		"Analyze this DeFi portfolio: %s\n\n"+
			"1. Use get_current_prices to fetch current prices for each token.\n"+
			"2. Use get_yield_pools filtered by the token symbols to find where they can earn yield.\n"+
			"3. Summarize total exposure, notable yield opportunities and concentration risks.",
		tokens)

	return mcp.NewGetPromptResult(
		"DeFi portfolio analysis",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		},
	), nil
}

func (s *Server) handleYieldOpportunitiesPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	minAPY := req.Params.Arguments["min_apy"]
	if minAPY == "" {
		minAPY = "5"
	}
	maxRisk := req.Params.Arguments["max_risk"]
	if maxRisk == "" {
		maxRisk = "balanced"
	}

	text := fmt.Sprintf(
		"Find DeFi yield opportunities with at least %s%% APY under a %s risk tolerance.\n\n"+
			"1. Use find_best_strategies with risk_profile=%s to rank candidate pools.\n"+
			"2. Use get_pool_chart on the top candidates to check yield stability over time.\n"+
			"3. Recommend 3-5 pools with their trade-offs (APY vs depth vs stability).",
		minAPY, maxRisk, maxRisk)

	return mcp.NewGetPromptResult(
		"Yield opportunity search",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		},
	), nil
}
