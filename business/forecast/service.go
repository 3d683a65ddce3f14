package forecast

import (
	"context"
	"fmt"
	"math"
	"time"

	"movieRadar/domain"
)

// confidence starts near 95% and drops two points per forecast day, floored
// at 50%; bounds widen with the horizon.
const (
	baseConfidence    = 95.0
	confidenceDecay   = 2.0
	minConfidence     = 50.0
	zScore95          = 1.96
	horizonWidening   = 0.1
	defaultHistoryLen = 365
)

// StockDataSource supplies time-ordered daily price series.
type StockDataSource interface {
	Symbols(ctx context.Context) ([]domain.StockSymbol, error)
	Series(ctx context.Context, symbol string, days int) ([]domain.StockPoint, error)
}

// Service fits a linear trend over a symbol's price history and projects it
// forward. It is independent of the recommendation core.
type Service struct {
	source StockDataSource
}

func NewService(source StockDataSource) *Service {
	return &Service{source: source}
}

// Result is one forecast run: the fitted-model metrics plus per-day
// predictions.
type Result struct {
	Symbol      string                   `json:"symbol"`
	History     []domain.StockPoint      `json:"history"`
	Metrics     domain.ForecastMetrics   `json:"metrics"`
	Predictions []domain.PricePrediction `json:"predictions"`
}

func (s *Service) Symbols(ctx context.Context) ([]domain.StockSymbol, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.source.Symbols(ctx)
}

// Forecast fits the trend over the symbol's recent history and predicts the
// next `days` closing prices with confidence intervals.
func (s *Service) Forecast(ctx context.Context, symbol string, days int) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("context error: %w", err)
	}
	if days < 1 {
		days = 1
	}

	history, err := s.source.Series(ctx, symbol, defaultHistoryLen)
	if err != nil {
		return Result{}, fmt.Errorf("load price series: %w", err)
	}

	prices := make([]float64, len(history))
	for i, p := range history {
		prices[i] = p.Price
	}

	model, err := fitLinear(prices)
	if err != nil {
		return Result{}, fmt.Errorf("fit trend for %s: %w", symbol, err)
	}

	return Result{
		Symbol:      symbol,
		History:     history,
		Metrics:     metrics(model, history),
		Predictions: predictFuture(model, history, days),
	}, nil
}

func metrics(m linearModel, history []domain.StockPoint) domain.ForecastMetrics {
	first := history[0].Price
	last := history[len(history)-1].Price

	trend := domain.TrendNeutral
	if last > first {
		trend = domain.TrendBullish
	} else if last < first {
		trend = domain.TrendBearish
	}

	return domain.ForecastMetrics{
		Accuracy: math.Max(0, math.Min(100, m.r2*100)),
		MSE:      m.mse,
		R2Score:  m.r2,
		Trend:    trend,
	}
}

func predictFuture(m linearModel, history []domain.StockPoint, days int) []domain.PricePrediction {
	baseIndex := float64(len(history) - 1)
	lastDate, err := time.Parse("2006-01-02", history[len(history)-1].Date)
	if err != nil {
		lastDate = time.Now()
	}

	stderr := m.standardError()
	predictions := make([]domain.PricePrediction, 0, days)

	for i := 1; i <= days; i++ {
		predicted := m.predict(baseIndex + float64(i))
		confidence := math.Max(minConfidence, baseConfidence-confidenceDecay*float64(i))
		margin := zScore95 * stderr * math.Sqrt(1+horizonWidening*float64(i))

		predictions = append(predictions, domain.PricePrediction{
			Date:           lastDate.AddDate(0, 0, i).Format("2006-01-02"),
			PredictedPrice: predicted,
			Confidence:     confidence,
			LowerBound:     predicted - margin,
			UpperBound:     predicted + margin,
		})
	}

	return predictions
}
