package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions for the DeFiLlama MCP server.
// Descriptions are what the LLM reads to decide which tool to use.

var ToolGetCurrentPrices = mcp.NewTool("get_current_prices",
	mcp.WithDescription(
		"Get current token prices from DeFiLlama. "+
			"Accepts coingecko ids ('coingecko:bitcoin'), chain-prefixed contract "+
			"addresses ('ethereum:0xA0b8...') or plain symbols, comma-separated."),
	mcp.WithString("coins",
		mcp.Required(),
		mcp.Description("Comma-separated coin identifiers (e.g. 'coingecko:bitcoin,ethereum:0xA0b8...')")),
	mcp.WithString("search_width",
		mcp.Description("Price lookup window around now (e.g. '4h'). Defaults to the API's own window.")),
)

var ToolGetHistoricalPrices = mcp.NewTool("get_historical_prices",
	mcp.WithDescription(
		"Get token prices at a specific point in time from DeFiLlama."),
	mcp.WithString("timestamp",
		mcp.Required(),
		mcp.Description("Point in time: unix seconds (e.g. '1704067200') or a YYYY-MM-DD date")),
	mcp.WithString("coins",
		mcp.Required(),
		mcp.Description("Comma-separated coin identifiers (e.g. 'coingecko:bitcoin')")),
	mcp.WithString("search_width",
		mcp.Description("Price lookup window around the timestamp (e.g. '4h')")),
)

var ToolGetYieldPools = mcp.NewTool("get_yield_pools",
	mcp.WithDescription(
		"List DeFi yield pools with optional filters. "+
			"Returns pool symbol, project, chain, APY and TVL, plus the pool id "+
			"usable with get_pool_chart."),
	mcp.WithNumber("min_tvl",
		mcp.Description("Minimum pool TVL in USD")),
	mcp.WithNumber("min_apy",
		mcp.Description("Minimum APY in percent")),
	mcp.WithNumber("max_apy",
		mcp.Description("Maximum APY in percent (filters out implausible farm rates)")),
	mcp.WithString("chains",
		mcp.Description("Comma-separated chain names (e.g. 'Ethereum,Base'), case-insensitive")),
	mcp.WithString("protocols",
		mcp.Description("Comma-separated project slugs (e.g. 'aave-v3,lido'), case-insensitive")),
	mcp.WithString("symbols",
		mcp.Description("Comma-separated token symbols matched as substrings (e.g. 'USDC,WETH')")),
	mcp.WithString("sort_by",
		mcp.Description("Sort field: 'tvl' (default), 'apy' or any raw pool field"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of pools to return (default 20)")),
)

var ToolGetPoolChart = mcp.NewTool("get_pool_chart",
	mcp.WithDescription(
		"Get the historical APY and TVL series for one yield pool. "+
			"Pool ids come from get_yield_pools results."),
	mcp.WithString("pool_id",
		mcp.Required(),
		mcp.Description("Pool id (a UUID from get_yield_pools)")),
	mcp.WithNumber("tail",
		mcp.Description("Only return the most recent N data points (default 30)")),
)

var ToolGetProtocols = mcp.NewTool("get_protocols",
	mcp.WithDescription(
		"List DeFi protocols ranked by TVL, with optional filters."),
	mcp.WithNumber("min_tvl",
		mcp.Description("Minimum protocol TVL in USD")),
	mcp.WithString("chains",
		mcp.Description("Comma-separated chain names, case-insensitive")),
	mcp.WithString("category",
		mcp.Description("Comma-separated categories (e.g. 'Lending,Dexes'), case-insensitive")),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of protocols to return (default 20)")),
)

var ToolGetChainTVL = mcp.NewTool("get_chain_tvl",
	mcp.WithDescription(
		"Get current total value locked per blockchain, largest first. "+
			"Add a protocol slug to get one protocol's TVL instead."),
	mcp.WithString("protocol",
		mcp.Description("Optional protocol slug (e.g. 'aave-v3') to get a single protocol's TVL")),
)

var ToolFindBestStrategies = mcp.NewTool("find_best_strategies",
	mcp.WithDescription(
		"Rank yield pools by a composite score of APY, liquidity depth and "+
			"yield stability under a risk profile. Use this to suggest where to "+
			"deploy capital."),
	mcp.WithString("risk_profile",
		mcp.Description("Risk appetite: 'conservative', 'balanced' (default) or 'aggressive'"),
		mcp.Enum("conservative", "balanced", "aggressive")),
	mcp.WithNumber("min_tvl",
		mcp.Description("Minimum pool TVL in USD (default 1000000)")),
	mcp.WithString("chains",
		mcp.Description("Comma-separated chain names to consider, case-insensitive")),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of strategies to return (default 10)")),
)
