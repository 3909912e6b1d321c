package prices

import (
	"encoding/json"
	"fmt"
	"sort"
)

// CoinPrice is one price entry from the coins API. Fields the upstream
// omitted are reported through the Has* flags
type CoinPrice struct {
	ID          string
	Symbol      string
	Price       float64
	HasPrice    bool
	Decimals    int
	HasDecimals bool
	Confidence  float64
	Timestamp   int64
}

// ParsePrices extracts coin entries from a coins-API payload of the form
// {"coins": {"<id>": {...}}}. Entries are returned sorted by ID so output
// is deterministic
func ParsePrices(raw json.RawMessage) ([]CoinPrice, error) {
	var payload struct {
		Coins map[string]struct {
			Symbol     string   `json:"symbol"`
			Price      *float64 `json:"price"`
			Decimals   *int     `json:"decimals"`
			Confidence float64  `json:"confidence"`
			Timestamp  int64    `json:"timestamp"`
		} `json:"coins"`
	}

	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("unexpected price payload shape: %w", err)
	}

	entries := make([]CoinPrice, 0, len(payload.Coins))
	for id, coin := range payload.Coins {
		entry := CoinPrice{
			ID:         id,
			Symbol:     coin.Symbol,
			Confidence: coin.Confidence,
			Timestamp:  coin.Timestamp,
		}
		if coin.Price != nil {
			entry.Price = *coin.Price
			entry.HasPrice = true
		}
		if coin.Decimals != nil {
			entry.Decimals = *coin.Decimals
			entry.HasDecimals = true
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})

	return entries, nil
}
