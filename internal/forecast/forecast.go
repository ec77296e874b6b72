// Package forecast projects tomorrow's demand per product from the last
// week of sales and an ambient signal. Predict is pure; the use case owns the
// current prediction set and recomputes it when its inputs change.
package forecast

import (
	"time"

	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/shopspring/decimal"
)

const (
	Window         = 7 * 24 * time.Hour
	windowDays     = 7
	baselineQty    = 10
	baseConfidence = 60
	confidenceStep = 5
	maxConfidence  = 95

	HighDemandComment   = "High demand expected due to weather."
	NormalDemandComment = "Normal demand expected."
)

// Signal is the ambient condition input, on the scale of a temperature in °C.
type Signal struct {
	Intensity float64 `json:"intensity"`
}

// Multiplier is a step function of the signal intensity.
func (s Signal) Multiplier() decimal.Decimal {
	switch {
	case s.Intensity >= 32:
		return decimal.RequireFromString("1.2")
	case s.Intensity >= 28:
		return decimal.RequireFromString("1.1")
	default:
		return decimal.NewFromInt(1)
	}
}

// Predict returns one prediction per product, in product order, dated to the
// calendar day of now. Products with no sales in the window use a baseline
// of 10 units.
func Predict(products []model.Product, sales []model.Sale, signal Signal, now time.Time) []model.Prediction {
	since := now.Add(-Window)
	sold := make(map[string]int64, len(products))
	for _, s := range sales {
		if s.CreatedAt.Before(since) {
			continue
		}
		sold[s.ProductID] += int64(s.Quantity)
	}

	multiplier := signal.Multiplier()
	day := now.Format(time.DateOnly)

	out := make([]model.Prediction, 0, len(products))
	for _, p := range products {
		qty := sold[p.ID]
		if qty == 0 {
			qty = baselineQty
		}

		avg := decimal.NewFromInt(qty).Div(decimal.NewFromInt(windowDays))
		predicted := decimal.Max(decimal.Zero, avg.Mul(multiplier).Round(0))
		confidence := decimal.Min(
			decimal.NewFromInt(maxConfidence),
			avg.Mul(decimal.NewFromInt(confidenceStep)).Add(decimal.NewFromInt(baseConfidence)).Round(0),
		)

		comment := NormalDemandComment
		if predicted.GreaterThan(avg) {
			comment = HighDemandComment
		}

		out = append(out, model.Prediction{
			ProductID:    p.ID,
			PredictedQty: int(predicted.IntPart()),
			Confidence:   int(confidence.IntPart()),
			Comment:      comment,
			Date:         day,
		})
	}
	return out
}
