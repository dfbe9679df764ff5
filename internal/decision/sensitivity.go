package decision

import "fmt"

// Perturbation records one sensitivity probe: a single criterion weight
// multiplied by a factor and the winner recomputed over a transient table.
type Perturbation struct {
	Criterion string  // perturbed criterion name
	Weight    float64 // the criterion's weight after applying the factor
	Best      int     // 1-based display position of the winning alternative
	BestName  string  // name of the winning alternative
}

// Sensitivity reruns best-alternative selection once per (criterion, factor)
// pair to assess ranking stability, iterating criteria outer and factors
// inner. Each probe scores a transient table that differs from the receiver
// in exactly one weight; the receiver is never modified.
func (t *Table) Sensitivity(factors []float64) ([]Perturbation, error) {
	results := make([]Perturbation, 0, len(t.criteria)*len(factors))
	for c, name := range t.criteria {
		for _, f := range factors {
			weights := t.Weights()
			weights[c] *= f
			probe, err := New(t.criteria, weights, t.alternatives, t.scores)
			if err != nil {
				return nil, err
			}
			best, err := probe.BestAlternative()
			if err != nil {
				return nil, fmt.Errorf("sensitivity of %s at weight %.4g: %w", name, weights[c], err)
			}
			results = append(results, Perturbation{
				Criterion: name,
				Weight:    weights[c],
				Best:      best + 1,
				BestName:  t.alternatives[best],
			})
		}
	}
	return results, nil
}
