package charts

import (
	"fmt"
	"math"
)

// FormatBillions renders a raw US$ value as a bar annotation: "2.5B" at or
// above one billion, "400.0M" below. NaN (a cell that never parsed) gets no
// label at all.
func FormatBillions(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	b := v / 1e9
	if b >= 1 {
		return fmt.Sprintf("%.1fB", b)
	}
	return fmt.Sprintf("%.1fM", b*1000)
}

// Shares converts wedge values into percentages of their total, rounded to
// one decimal. NaN values contribute nothing to the total and share 0.
func Shares(values []float64) []float64 {
	var total float64
	for _, v := range values {
		if !math.IsNaN(v) {
			total += v
		}
	}
	shares := make([]float64, len(values))
	if total == 0 {
		return shares
	}
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		shares[i] = math.Round(v/total*1000) / 10
	}
	return shares
}

// chartValue maps a possibly-missing number onto what ECharts expects:
// "-" renders as a gap instead of a zero-like artifact.
func chartValue(v float64) interface{} {
	if math.IsNaN(v) {
		return "-"
	}
	return v
}
