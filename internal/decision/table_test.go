package decision

import (
	"errors"
	"math"
	"testing"
)

func mustTable(t *testing.T, criteria []string, weights []float64, alternatives []string, scores [][]float64) *Table {
	t.Helper()
	tbl, err := New(criteria, weights, alternatives, scores)
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	return tbl
}

func carTable(t *testing.T) *Table {
	t.Helper()
	return mustTable(t,
		[]string{"Safety", "Cost", "Comfort", "Resale Value", "Prestige"},
		[]float64{10, 8, 5, 6, 2},
		[]string{"Lexus RX 350", "Audi A6", "Toyota Prius"},
		[][]float64{
			{8, 7, 9, 8, 6},
			{9, 3, 6, 6, 10},
			{5, 10, 3, 6, 2},
		})
}

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNew_ShapeErrors(t *testing.T) {
	cases := []struct {
		name         string
		criteria     []string
		weights      []float64
		alternatives []string
		scores       [][]float64
	}{
		{"weights shorter than criteria", []string{"a", "b"}, []float64{1}, []string{"x"}, [][]float64{{1, 2}}},
		{"rows mismatch alternatives", []string{"a"}, []float64{1}, []string{"x", "y"}, [][]float64{{1}}},
		{"row shorter than criteria", []string{"a", "b"}, []float64{1, 2}, []string{"x"}, [][]float64{{1}}},
		{"row longer than criteria", []string{"a"}, []float64{1}, []string{"x"}, [][]float64{{1, 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.criteria, tc.weights, tc.alternatives, tc.scores)
			var se *ShapeError
			if !errors.As(err, &se) {
				t.Fatalf("expected ShapeError, got %v", err)
			}
		})
	}
}

func TestScoring_TwoByTwoScenario(t *testing.T) {
	tbl := mustTable(t,
		[]string{"Safety", "Cost"},
		[]float64{10, 8},
		[]string{"A", "B"},
		[][]float64{{8, 7}, {9, 3}})

	got, err := tbl.TotalWeightedScore(0)
	if err != nil {
		t.Fatalf("total(0): %v", err)
	}
	if !almost(got, 136) {
		t.Fatalf("total(0) = %v, want 136", got)
	}
	got, err = tbl.TotalWeightedScore(1)
	if err != nil {
		t.Fatalf("total(1): %v", err)
	}
	if !almost(got, 114) {
		t.Fatalf("total(1) = %v, want 114", got)
	}
	best, err := tbl.BestAlternative()
	if err != nil {
		t.Fatalf("best: %v", err)
	}
	if best != 0 {
		t.Fatalf("best = %d, want 0", best)
	}
}

func TestWeightedScore_IndexErrors(t *testing.T) {
	tbl := carTable(t)
	for _, pair := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 5}} {
		if _, err := tbl.WeightedScore(pair[0], pair[1]); err == nil {
			t.Fatalf("WeightedScore(%d,%d): expected index error", pair[0], pair[1])
		} else {
			var ie *IndexError
			if !errors.As(err, &ie) {
				t.Fatalf("WeightedScore(%d,%d): expected IndexError, got %v", pair[0], pair[1], err)
			}
		}
	}
	if _, err := tbl.TotalWeightedScore(99); err == nil {
		t.Fatalf("TotalWeightedScore(99): expected index error")
	}
}

func TestTotalWeightedScore_MissingPropagates(t *testing.T) {
	tbl := mustTable(t,
		[]string{"a", "b"},
		[]float64{1, 1},
		[]string{"x"},
		[][]float64{{5, Missing()}})
	total, err := tbl.TotalWeightedScore(0)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if !IsMissing(total) {
		t.Fatalf("total = %v, want missing", total)
	}
}

func TestBestAlternative_TieLowestIndex(t *testing.T) {
	tbl := mustTable(t,
		[]string{"a"},
		[]float64{1},
		[]string{"first", "second", "third"},
		[][]float64{{5}, {5}, {3}})
	best, err := tbl.BestAlternative()
	if err != nil {
		t.Fatalf("best: %v", err)
	}
	if best != 0 {
		t.Fatalf("best = %d, want 0 (lowest index on ties)", best)
	}
}

func TestBestAlternative_MissingTotalsExcluded(t *testing.T) {
	// The highest raw scorer has a missing cell, so it drops out.
	tbl := mustTable(t,
		[]string{"a", "b"},
		[]float64{1, 1},
		[]string{"sparse", "complete"},
		[][]float64{{100, Missing()}, {2, 3}})
	best, err := tbl.BestAlternative()
	if err != nil {
		t.Fatalf("best: %v", err)
	}
	if best != 1 {
		t.Fatalf("best = %d, want 1", best)
	}
}

func TestBestAlternative_AllTotalsMissing(t *testing.T) {
	tbl := mustTable(t,
		[]string{"a"},
		[]float64{1},
		[]string{"x", "y"},
		[][]float64{{Missing()}, {Missing()}})
	if _, err := tbl.BestAlternative(); !errors.Is(err, ErrAllTotalsMissing) {
		t.Fatalf("expected ErrAllTotalsMissing, got %v", err)
	}
}

func TestNormalized_WeightsSumTo100(t *testing.T) {
	tbl := carTable(t)
	norm, err := tbl.Normalized(DefaultMaxScore)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	var sum float64
	for _, w := range norm.Weights() {
		sum += w
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Fatalf("normalized weights sum = %v, want 100", sum)
	}
}

func TestNormalized_ScoresDivided(t *testing.T) {
	tbl := carTable(t)
	norm, err := tbl.Normalized(10)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	orig := tbl.Scores()
	got := norm.Scores()
	for a := range orig {
		for c := range orig[a] {
			if !almost(got[a][c], orig[a][c]/10) {
				t.Fatalf("scores[%d][%d] = %v, want %v", a, c, got[a][c], orig[a][c]/10)
			}
		}
	}
	// Names unchanged.
	if norm.Criteria()[0] != "Safety" || norm.Alternatives()[0] != "Lexus RX 350" {
		t.Fatalf("normalization must not rename criteria or alternatives")
	}
}

func TestNormalized_MissingStaysMissing(t *testing.T) {
	tbl := mustTable(t,
		[]string{"a", "b"},
		[]float64{2, 3},
		[]string{"x"},
		[][]float64{{Missing(), 4}})
	norm, err := tbl.Normalized(10)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !IsMissing(norm.Scores()[0][0]) {
		t.Fatalf("missing cell must survive normalization")
	}
	if !almost(norm.Scores()[0][1], 0.4) {
		t.Fatalf("known cell = %v, want 0.4", norm.Scores()[0][1])
	}
}

func TestNormalized_DegenerateInputs(t *testing.T) {
	zero := mustTable(t, []string{"a", "b"}, []float64{0, 0}, []string{"x"}, [][]float64{{1, 2}})
	if _, err := zero.Normalized(10); !errors.Is(err, ErrZeroWeightSum) {
		t.Fatalf("expected ErrZeroWeightSum, got %v", err)
	}
	ok := mustTable(t, []string{"a"}, []float64{1}, []string{"x"}, [][]float64{{1}})
	if _, err := ok.Normalized(0); !errors.Is(err, ErrZeroMaxScore) {
		t.Fatalf("expected ErrZeroMaxScore, got %v", err)
	}
}

func TestTable_DefensiveCopies(t *testing.T) {
	criteria := []string{"a", "b"}
	weights := []float64{1, 2}
	alternatives := []string{"x"}
	scores := [][]float64{{3, 4}}
	tbl := mustTable(t, criteria, weights, alternatives, scores)

	// Mutating constructor inputs must not reach the table.
	weights[0] = 99
	scores[0][0] = 99
	if got := tbl.Weights()[0]; got != 1 {
		t.Fatalf("weights aliased constructor input: %v", got)
	}
	if got := tbl.Scores()[0][0]; got != 3 {
		t.Fatalf("scores aliased constructor input: %v", got)
	}

	// Mutating accessor results must not reach the table either.
	tbl.Scores()[0][1] = 99
	tbl.Criteria()[0] = "mutated"
	if got, _ := tbl.Score(0, 1); got != 4 {
		t.Fatalf("accessor leaked internal scores: %v", got)
	}
	if tbl.Criteria()[0] != "a" {
		t.Fatalf("accessor leaked internal criteria")
	}
}

func TestNormalized_SourceUntouched(t *testing.T) {
	tbl := carTable(t)
	before := tbl.Scores()
	if _, err := tbl.Normalized(10); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	after := tbl.Scores()
	for a := range before {
		for c := range before[a] {
			if before[a][c] != after[a][c] {
				t.Fatalf("normalization mutated source at [%d][%d]", a, c)
			}
		}
	}
}
