package prices

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// escapeCoins percent-encodes a coin list for use in a URL path. The
// coins API identifier alphabet (",", ":" and "-" separators for
// entries like "ethereum:0xA0b8..." and "coingecko:bitcoin") stays
// unescaped
func escapeCoins(coins string) string {
	coins = strings.TrimSpace(coins)

	var b strings.Builder
	b.Grow(len(coins))
	for i := 0; i < len(coins); i++ {
		c := coins[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == '-', c == '.', c == '_', c == '~', c == ',', c == ':':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// ParseTimestamp accepts unix seconds or a YYYY-MM-DD date (UTC midnight)
func ParseTimestamp(value string) (int64, error) {
	value = strings.TrimSpace(value)

	if strings.Contains(value, "-") {
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q: use unix seconds or YYYY-MM-DD", value)
		}
		return t.UTC().Unix(), nil
	}

	ts, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: use unix seconds or YYYY-MM-DD", value)
	}
	return ts, nil
}
