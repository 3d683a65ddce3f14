package memory

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"movieRadar/domain"
)

// StockSeriesSource generates deterministic synthetic daily price series per
// symbol. Seeding the walk from the symbol hash keeps a symbol's history
// stable across requests and process restarts.
type StockSeriesSource struct {
	now func() time.Time
}

func NewStockSeriesSource() *StockSeriesSource {
	return &StockSeriesSource{now: time.Now}
}

var stockSymbols = []domain.StockSymbol{
	{Symbol: "AAPL", Name: "Apple Inc.", Sector: "Technology"},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Sector: "Technology"},
	{Symbol: "MSFT", Name: "Microsoft Corporation", Sector: "Technology"},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Sector: "Consumer Cyclical"},
	{Symbol: "TSLA", Name: "Tesla Inc.", Sector: "Consumer Cyclical"},
	{Symbol: "NVDA", Name: "NVIDIA Corporation", Sector: "Technology"},
	{Symbol: "META", Name: "Meta Platforms Inc.", Sector: "Technology"},
	{Symbol: "JPM", Name: "JPMorgan Chase & Co.", Sector: "Financial Services"},
	{Symbol: "V", Name: "Visa Inc.", Sector: "Financial Services"},
	{Symbol: "JNJ", Name: "Johnson & Johnson", Sector: "Healthcare"},
}

var basePrices = map[string]float64{
	"AAPL":  175,
	"GOOGL": 135,
	"MSFT":  340,
	"AMZN":  145,
	"TSLA":  245,
	"NVDA":  450,
	"META":  320,
	"JPM":   155,
	"V":     240,
	"JNJ":   165,
}

// Symbols returns the mock ticker universe.
func (s *StockSeriesSource) Symbols(ctx context.Context) ([]domain.StockSymbol, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	out := make([]domain.StockSymbol, len(stockSymbols))
	copy(out, stockSymbols)

	return out, nil
}

// Series returns days+1 points ending today, a random walk with a mild
// per-symbol trend around the symbol's base price.
func (s *StockSeriesSource) Series(ctx context.Context, symbol string, days int) ([]domain.StockPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if days < 1 {
		days = 1
	}

	rng := rand.New(rand.NewSource(symbolSeed(symbol)))

	price := basePrices[symbol]
	if price == 0 {
		price = 100
	}

	trend := 1.0
	if rng.Float64() > 0.5 {
		trend = -1.0
	}
	volatility := 0.02 + rng.Float64()*0.03

	today := s.now()
	out := make([]domain.StockPoint, 0, days+1)

	for i := days; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)

		dailyChange := (rng.Float64() - 0.5) * volatility * price
		price += dailyChange + trend*0.001*price
		if price < 10 {
			price = 10
		}

		high := price * (1 + rng.Float64()*0.02)
		low := price * (1 - rng.Float64()*0.02)
		open := price + (rng.Float64()-0.5)*0.01*price
		volume := int64(1_000_000 + rng.Intn(5_000_000))

		out = append(out, domain.StockPoint{
			Date:   date.Format("2006-01-02"),
			Price:  price,
			Open:   open,
			Close:  price,
			High:   high,
			Low:    low,
			Volume: volume,
		})
	}

	return out, nil
}

func symbolSeed(symbol string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(symbol))
	return int64(h.Sum64())
}
