package tableio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/kepner-cli/internal/decision"
)

const carYAML = `criteria: [Safety, Cost, Comfort]
weights: [10, 8, 5]
alternatives:
  - name: Lexus RX 350
    scores: [8, 7, 9]
  - name: Audi A6
    scores: [9, null, "?"]
  - name: Toyota Prius
    scores: [5, .nan, 3]
`

func TestParseYAML(t *testing.T) {
	tbl, err := ParseYAML([]byte(carYAML))
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	if got := tbl.Criteria(); len(got) != 3 || got[0] != "Safety" {
		t.Fatalf("criteria = %v", got)
	}
	if got := tbl.Alternatives(); len(got) != 3 || got[1] != "Audi A6" {
		t.Fatalf("alternatives = %v", got)
	}
	scores := tbl.Scores()
	if scores[0][0] != 8 || scores[2][0] != 5 {
		t.Fatalf("known scores misparsed: %v", scores)
	}
	// null, "?", and .nan all read as the missing sentinel.
	for _, cell := range []float64{scores[1][1], scores[1][2], scores[2][1]} {
		if !decision.IsMissing(cell) {
			t.Fatalf("expected missing cell, got %v", cell)
		}
	}
}

func TestParseYAML_BadScore(t *testing.T) {
	bad := `criteria: [a]
weights: [1]
alternatives:
  - name: x
    scores: [high]
`
	if _, err := ParseYAML([]byte(bad)); err == nil {
		t.Fatalf("expected error for non-numeric score")
	}
}

func TestParseYAML_ShapeErrorSurfaces(t *testing.T) {
	bad := `criteria: [a, b]
weights: [1, 2]
alternatives:
  - name: x
    scores: [1]
`
	_, err := ParseYAML([]byte(bad))
	var se *decision.ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cars.yaml")
	if err := os.WriteFile(path, []byte(carYAML), 0o644); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	tbl, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	if len(tbl.Alternatives()) != 3 {
		t.Fatalf("alternatives = %v", tbl.Alternatives())
	}
}

func TestLoadCSV(t *testing.T) {
	content := "alternative,Safety,Cost\n" +
		"weights,10,8\n" +
		"Lexus RX 350,8,7\n" +
		"Audi A6,?,3\n"
	path := filepath.Join(t.TempDir(), "cars.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	tbl, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("load csv: %v", err)
	}
	if got := tbl.Weights(); got[0] != 10 || got[1] != 8 {
		t.Fatalf("weights = %v", got)
	}
	scores := tbl.Scores()
	if scores[0][1] != 7 {
		t.Fatalf("scores = %v", scores)
	}
	if !decision.IsMissing(scores[1][0]) {
		t.Fatalf("expected missing cell, got %v", scores[1][0])
	}
}

func TestLoadCSV_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no weights row", "alternative,Safety\nLexus,8\n"},
		{"missing weight value", "alternative,Safety\nweights,?\nLexus,8\n"},
		{"non-numeric score", "alternative,Safety\nweights,10\nLexus,eight\n"},
		{"header only", "alternative,Safety\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.csv")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write csv: %v", err)
			}
			if _, err := LoadCSV(path); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
