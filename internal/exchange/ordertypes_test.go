package exchange

import "testing"

func TestBinanceOrderTypes(t *testing.T) {
	t.Parallel()

	mapping := NewBinanceOrderTypes()

	tests := []struct {
		kind OrderKind
		want string
	}{
		{kind: OrderKindLimit, want: BinanceOrderTypeLimit},
		{kind: OrderKindMarket, want: BinanceOrderTypeMarket},
	}

	for _, tc := range tests {
		got, ok := mapping.OrderType(tc.kind)
		if !ok {
			t.Fatalf("expected identifier for %s", tc.kind)
		}
		if got != tc.want {
			t.Fatalf("expected %s for %s, got %s", tc.want, tc.kind, got)
		}
	}

	if _, ok := mapping.OrderType("stop"); ok {
		t.Fatalf("expected unknown kind to be rejected")
	}
}

func TestNewStaticOrderTypesCopiesTable(t *testing.T) {
	t.Parallel()

	table := map[OrderKind]string{OrderKindLimit: "L"}
	mapping := NewStaticOrderTypes(table)
	table[OrderKindLimit] = "changed"

	if got, _ := mapping.OrderType(OrderKindLimit); got != "L" {
		t.Fatalf("expected mapping to be isolated from caller table, got %s", got)
	}
	if _, ok := mapping.OrderType(OrderKindMarket); ok {
		t.Fatalf("expected market to be absent")
	}
}

func TestOrderKindsStableOrder(t *testing.T) {
	t.Parallel()

	kinds := OrderKinds()
	if len(kinds) != 2 || kinds[0] != OrderKindLimit || kinds[1] != OrderKindMarket {
		t.Fatalf("unexpected kinds: %v", kinds)
	}
}
