package decision

import (
	"fmt"
	"math"
)

// DefaultMaxScore is the assumed top of the raw scoring scale.
const DefaultMaxScore = 10

// Table is an immutable weighted decision table: M alternatives scored
// against N weighted criteria. Derived views (Normalized, Imputed) are new
// tables; a constructed table never changes and never shares mutable state
// with another.
type Table struct {
	criteria     []string
	weights      []float64
	alternatives []string
	scores       [][]float64 // scores[alternative][criterion]; NaN marks a missing measurement
}

// New constructs a table from the four sequences, deep-copying each. Weights
// align positionally with criteria and every score row with the criteria
// count; any length mismatch is a ShapeError.
func New(criteria []string, weights []float64, alternatives []string, scores [][]float64) (*Table, error) {
	if len(weights) != len(criteria) {
		return nil, &ShapeError{Field: "weights", Want: len(criteria), Got: len(weights)}
	}
	if len(scores) != len(alternatives) {
		return nil, &ShapeError{Field: "scores", Want: len(alternatives), Got: len(scores)}
	}
	for i, row := range scores {
		if len(row) != len(criteria) {
			return nil, &ShapeError{Field: fmt.Sprintf("scores[%d]", i), Want: len(criteria), Got: len(row)}
		}
	}
	t := &Table{
		criteria:     append([]string(nil), criteria...),
		weights:      append([]float64(nil), weights...),
		alternatives: append([]string(nil), alternatives...),
		scores:       make([][]float64, len(scores)),
	}
	for i, row := range scores {
		t.scores[i] = append([]float64(nil), row...)
	}
	return t, nil
}

// Criteria returns a copy of the criterion names, in table order.
func (t *Table) Criteria() []string { return append([]string(nil), t.criteria...) }

// Weights returns a copy of the criterion weights, aligned with Criteria.
func (t *Table) Weights() []float64 { return append([]float64(nil), t.weights...) }

// Alternatives returns a copy of the alternative names, in table order.
func (t *Table) Alternatives() []string { return append([]string(nil), t.alternatives...) }

// Scores returns a deep copy of the score matrix, rows aligned with
// Alternatives and columns with Criteria.
func (t *Table) Scores() [][]float64 {
	out := make([][]float64, len(t.scores))
	for i, row := range t.scores {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

func (t *Table) checkAlternative(a int) error {
	if a < 0 || a >= len(t.alternatives) {
		return &IndexError{Kind: "alternative", Index: a, Len: len(t.alternatives)}
	}
	return nil
}

func (t *Table) checkCriterion(c int) error {
	if c < 0 || c >= len(t.criteria) {
		return &IndexError{Kind: "criterion", Index: c, Len: len(t.criteria)}
	}
	return nil
}

// Score returns the raw score of alternative a on criterion c. The result is
// the missing sentinel when the measurement is unknown.
func (t *Table) Score(a, c int) (float64, error) {
	if err := t.checkAlternative(a); err != nil {
		return 0, err
	}
	if err := t.checkCriterion(c); err != nil {
		return 0, err
	}
	return t.scores[a][c], nil
}

// WeightedScore returns weights[c] * scores[a][c]. A missing score yields a
// missing weighted score.
func (t *Table) WeightedScore(a, c int) (float64, error) {
	s, err := t.Score(a, c)
	if err != nil {
		return 0, err
	}
	return t.weights[c] * s, nil
}

// TotalWeightedScore sums the weighted scores of alternative a across all
// criteria. One missing score makes the whole total missing.
func (t *Table) TotalWeightedScore(a int) (float64, error) {
	if err := t.checkAlternative(a); err != nil {
		return 0, err
	}
	total := 0.0
	for c := range t.criteria {
		total += t.weights[c] * t.scores[a][c]
	}
	return total, nil
}

// BestAlternative returns the index of the alternative with the highest total
// weighted score. Alternatives whose total is missing are excluded from the
// candidate set; ties go to the lowest index. Fails with ErrAllTotalsMissing
// when no alternative has a known total.
func (t *Table) BestAlternative() (int, error) {
	best := -1
	bestTotal := math.Inf(-1)
	for a := range t.alternatives {
		total, err := t.TotalWeightedScore(a)
		if err != nil {
			return 0, err
		}
		if IsMissing(total) {
			continue
		}
		if total > bestTotal {
			best, bestTotal = a, total
		}
	}
	if best < 0 {
		return 0, ErrAllTotalsMissing
	}
	return best, nil
}

// Normalized returns a new table whose weights are rescaled to sum to exactly
// 100 and whose scores are divided by maxScore, landing nominally in [0,1].
// Raw scores above maxScore are tolerated (no clamping); missing scores stay
// missing. Fails when the weights sum to zero or maxScore is zero rather than
// silently producing infinities.
func (t *Table) Normalized(maxScore float64) (*Table, error) {
	if maxScore == 0 {
		return nil, ErrZeroMaxScore
	}
	var sum float64
	for _, w := range t.weights {
		sum += w
	}
	if sum == 0 {
		return nil, ErrZeroWeightSum
	}
	weights := make([]float64, len(t.weights))
	for i, w := range t.weights {
		weights[i] = 100 * w / sum
	}
	scores := make([][]float64, len(t.scores))
	for i, row := range t.scores {
		nr := make([]float64, len(row))
		for j, s := range row {
			nr[j] = s / maxScore
		}
		scores[i] = nr
	}
	return New(t.criteria, weights, t.alternatives, scores)
}
