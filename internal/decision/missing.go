package decision

import "math"

// Scores use float64 NaN as the missing-measurement sentinel: it is distinct
// from zero, compares false against everything, and propagates through sums,
// which is exactly the behavior the table operations rely on.

// Missing returns the sentinel marking an unknown score.
func Missing() float64 { return math.NaN() }

// IsMissing reports whether x is the missing-score sentinel.
func IsMissing(x float64) bool { return math.IsNaN(x) }

// HasMissing reports whether any cell in row is missing.
func HasMissing(row []float64) bool {
	for _, x := range row {
		if IsMissing(x) {
			return true
		}
	}
	return false
}

// Distance is a missing-tolerant Euclidean distance between two score rows of
// equal length. Positions unknown on either side contribute nothing to the
// sum of squared differences: they are skipped, not penalized. Two rows with
// no jointly known position therefore sit at distance 0, which reads as "no
// evidence of dissimilarity" rather than "identical".
func Distance(x, y []float64) float64 {
	var sum float64
	for i, xv := range x {
		if IsMissing(xv) {
			continue
		}
		yv := y[i]
		if IsMissing(yv) {
			continue
		}
		d := xv - yv
		sum += d * d
	}
	return math.Sqrt(sum)
}
