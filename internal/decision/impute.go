package decision

import (
	"fmt"
	"math"
)

// closestComplete returns the index of the alternative nearest to query under
// Distance, considering only rows with no missing values and skipping query
// itself. Ties go to the lowest index. Returns -1 when no complete row exists.
func (t *Table) closestComplete(query int) int {
	best := -1
	bestDist := math.Inf(1)
	q := t.scores[query]
	for i, row := range t.scores {
		if i == query || HasMissing(row) {
			continue
		}
		if d := Distance(row, q); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Imputed returns a new table in which every score row with missing values is
// replaced by a synthesized one: a copy of the nearest fully known row,
// overwritten at every position where the original row has a known value.
// Complete rows pass through unchanged and the receiver is never modified.
// Fails with ErrNoCompleteRow when no alternative can act as a donor.
func (t *Table) Imputed() (*Table, error) {
	scores := make([][]float64, len(t.scores))
	for i, row := range t.scores {
		if !HasMissing(row) {
			scores[i] = append([]float64(nil), row...)
			continue
		}
		donor := t.closestComplete(i)
		if donor < 0 {
			return nil, fmt.Errorf("impute %q: %w", t.alternatives[i], ErrNoCompleteRow)
		}
		filled := append([]float64(nil), t.scores[donor]...)
		for c, s := range row {
			if !IsMissing(s) {
				filled[c] = s
			}
		}
		scores[i] = filled
	}
	return New(t.criteria, t.weights, t.alternatives, scores)
}
