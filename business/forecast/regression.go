package forecast

import (
	"errors"
	"math"
)

// ErrInsufficientData is returned when a series is too short or degenerate
// to fit a trend line.
var ErrInsufficientData = errors.New("not enough data points to fit a trend")

// linearModel is a single-feature ordinary least squares fit over a
// time-ordered series, x being the sample index.
type linearModel struct {
	slope     float64
	intercept float64
	r2        float64
	mse       float64
}

func fitLinear(prices []float64) (linearModel, error) {
	n := len(prices)
	if n < 2 {
		return linearModel{}, ErrInsufficientData
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range prices {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return linearModel{}, ErrInsufficientData
	}

	m := linearModel{}
	m.slope = (fn*sumXY - sumX*sumY) / denom
	m.intercept = (sumY - m.slope*sumX) / fn

	meanY := sumY / fn
	var ssRes, ssTot float64
	for i, y := range prices {
		pred := m.predict(float64(i))
		ssRes += (y - pred) * (y - pred)
		ssTot += (y - meanY) * (y - meanY)
	}

	if ssTot == 0 {
		m.r2 = 0
	} else {
		m.r2 = 1 - ssRes/ssTot
	}
	m.mse = ssRes / fn

	return m, nil
}

func (m linearModel) predict(x float64) float64 {
	return m.slope*x + m.intercept
}

func (m linearModel) standardError() float64 {
	return math.Sqrt(m.mse)
}
