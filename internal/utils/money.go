package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeTotal parses a monetary total carried as an exact decimal string.
// Totals travel as strings end to end so binary floating point never touches
// them in transit.
func NormalizeTotal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// RoundTotal quantizes a total to exactly 2 fractional digits with half-up
// rounding: a midpoint rounds away from zero, never banker's rounding.
// Idempotent - rounding an already-rounded total is a no-op.
func RoundTotal(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// TotalToFloat is the single point where a total becomes a float for JSON
// output. Rounding happens first, on the exact decimal, so float error is
// introduced only after quantization.
func TotalToFloat(total string) float64 {
	d, err := NormalizeTotal(total)
	if err != nil {
		Logger.WithError(err).Warnf("Unparseable total %q, rendering as 0", total)
		d = decimal.Zero
	}
	f, _ := RoundTotal(d).Float64()
	return f
}
