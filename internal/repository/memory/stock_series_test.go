package memory

import (
	"context"
	"testing"
	"time"
)

func TestStockSeries_Deterministic(t *testing.T) {
	source := NewStockSeriesSource()
	fixed := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	source.now = func() time.Time { return fixed }

	ctx := context.Background()

	a, err := source.Series(ctx, "AAPL", 30)
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	b, err := source.Series(ctx, "AAPL", 30)
	if err != nil {
		t.Fatalf("Series: %v", err)
	}

	if len(a) != 31 {
		t.Fatalf("got %d points, want days+1 = 31", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs across runs: %v vs %v", i, a[i], b[i])
		}
	}

	if a[len(a)-1].Date != "2025-08-01" {
		t.Errorf("last date = %s, want 2025-08-01", a[len(a)-1].Date)
	}
}

func TestStockSeries_PriceFloor(t *testing.T) {
	source := NewStockSeriesSource()

	points, err := source.Series(context.Background(), "UNKNOWN", 365)
	if err != nil {
		t.Fatalf("Series: %v", err)
	}

	for _, p := range points {
		if p.Price < 10 {
			t.Fatalf("price %v below floor", p.Price)
		}
	}
}

func TestStockSeries_SymbolUniverse(t *testing.T) {
	source := NewStockSeriesSource()

	symbols, err := source.Symbols(context.Background())
	if err != nil {
		t.Fatalf("Symbols: %v", err)
	}
	if len(symbols) == 0 {
		t.Fatal("empty symbol universe")
	}
	for _, s := range symbols {
		if s.Symbol == "" || s.Name == "" {
			t.Errorf("incomplete symbol entry: %+v", s)
		}
	}
}
