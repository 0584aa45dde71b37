package exchange

// OrderKind is the symbolic order type used in configuration.
type OrderKind string

const (
	OrderKindLimit  OrderKind = "limit"
	OrderKindMarket OrderKind = "market"
)

// OrderKinds returns the accepted symbolic order types in a stable order.
func OrderKinds() []OrderKind {
	return []OrderKind{OrderKindLimit, OrderKindMarket}
}

// OrderTypeMapping resolves symbolic order kinds to exchange-specific identifiers.
type OrderTypeMapping interface {
	OrderType(kind OrderKind) (string, bool)
}

// Binance order type identifiers as accepted by the spot REST API.
const (
	BinanceOrderTypeLimit  = "LIMIT"
	BinanceOrderTypeMarket = "MARKET"
)

type staticMapping map[OrderKind]string

// NewBinanceOrderTypes returns the order type mapping used by the Binance client.
func NewBinanceOrderTypes() OrderTypeMapping {
	return staticMapping{
		OrderKindLimit:  BinanceOrderTypeLimit,
		OrderKindMarket: BinanceOrderTypeMarket,
	}
}

// NewStaticOrderTypes builds a mapping from a fixed table, primarily for tests
// and alternative exchange clients.
func NewStaticOrderTypes(table map[OrderKind]string) OrderTypeMapping {
	m := make(staticMapping, len(table))
	for kind, id := range table {
		m[kind] = id
	}
	return m
}

func (m staticMapping) OrderType(kind OrderKind) (string, bool) {
	id, ok := m[kind]
	return id, ok
}
