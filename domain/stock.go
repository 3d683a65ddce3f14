package domain

// StockPoint is one day of a time-ordered price series.
type StockPoint struct {
	Date   string  `json:"date"`
	Price  float64 `json:"price"`
	Open   float64 `json:"open"`
	Close  float64 `json:"close"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Volume int64   `json:"volume"`
}

// PricePrediction is one forecast day with its confidence interval.
type PricePrediction struct {
	Date           string  `json:"date"`
	PredictedPrice float64 `json:"predicted_price"`
	Confidence     float64 `json:"confidence"`
	LowerBound     float64 `json:"lower_bound"`
	UpperBound     float64 `json:"upper_bound"`
}

// Trend labels for ForecastMetrics.
const (
	TrendBullish = "bullish"
	TrendBearish = "bearish"
	TrendNeutral = "neutral"
)

// ForecastMetrics summarizes the fitted trend model.
type ForecastMetrics struct {
	Accuracy float64 `json:"accuracy"`
	MSE      float64 `json:"mse"`
	R2Score  float64 `json:"r2_score"`
	Trend    string  `json:"trend"`
}

// StockSymbol identifies one mock ticker in the synthetic price universe.
type StockSymbol struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
}
