// Package analysis implements the high-value anomaly screen: a transaction
// is anomalous when its amount strictly exceeds mean + 2×(population
// standard deviation) of its case's transaction amounts.
package analysis

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/chj1210/investigator/internal/models"
)

const ReasonHighValue = "high-value anomaly"

var two = decimal.NewFromInt(2)

// Detect screens the full transaction set of one case and returns the
// transactions exceeding the threshold, annotated with a reason, in input
// order. It is a pure function: empty input yields an empty result and no
// well-formed input produces an error.
//
// Mean and variance are accumulated in decimal so no fractional cents are
// lost before the square root; only the final sqrt runs through float64,
// which is exact to well beyond the stored 2-decimal precision.
func Detect(txs []models.Transaction) []models.AnomalousTransaction {
	out := []models.AnomalousTransaction{}
	if len(txs) == 0 {
		return out
	}

	n := decimal.NewFromInt(int64(len(txs)))
	sum := decimal.Zero
	for _, t := range txs {
		sum = sum.Add(t.Amount)
	}
	mean := sum.Div(n)

	// A single transaction has σ = 0 by policy rather than running the
	// variance formula with n = 1.
	sigma := decimal.Zero
	if len(txs) > 1 {
		sqSum := decimal.Zero
		for _, t := range txs {
			d := t.Amount.Sub(mean)
			sqSum = sqSum.Add(d.Mul(d))
		}
		variance, _ := sqSum.Div(n).Float64()
		sigma = decimal.NewFromFloat(math.Sqrt(variance))
	}

	threshold := mean.Add(two.Mul(sigma))
	for _, t := range txs {
		if t.Amount.GreaterThan(threshold) {
			out = append(out, models.AnomalousTransaction{Transaction: t, Reason: ReasonHighValue})
		}
	}
	return out
}
