package models

// Coin identifies a tradable asset by its ticker symbol.
type Coin struct {
	Symbol  string `json:"symbol" yaml:"symbol"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// NewCoin creates a Coin with the given symbol and enabled flag.
func NewCoin(symbol string, enabled bool) Coin {
	return Coin{Symbol: symbol, Enabled: enabled}
}

func (c Coin) String() string {
	return c.Symbol
}
