package tableio

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/KaramelBytes/kepner-cli/internal/decision"
	"gopkg.in/yaml.v3"
)

// Workbook is the on-disk YAML form of a decision table:
//
//	criteria: [Safety, Cost]
//	weights: [10, 8]
//	alternatives:
//	  - name: Lexus RX 350
//	    scores: [8, 7]
//	  - name: Audi A6
//	    scores: [9, "?"]
//
// Unknown measurements may be written as null, .nan, or one of the missing
// markers ("?", "-", "na", "n/a").
type Workbook struct {
	Criteria     []string      `yaml:"criteria"`
	Weights      []float64     `yaml:"weights"`
	Alternatives []Alternative `yaml:"alternatives"`
}

// Alternative names one option and its raw scores, aligned with Criteria.
type Alternative struct {
	Name   string  `yaml:"name"`
	Scores []Score `yaml:"scores"`
}

// Score is a float64 that additionally accepts the missing-value spellings.
type Score float64

func (s *Score) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*s = Score(decision.Missing())
		return nil
	}
	raw := strings.TrimSpace(value.Value)
	if isMissingMarker(raw) {
		*s = Score(decision.Missing())
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("score %q: %w", value.Value, err)
	}
	*s = Score(f)
	return nil
}

func isMissingMarker(s string) bool {
	switch strings.ToLower(s) {
	case "", "?", "-", "na", "n/a", ".nan", "nan":
		return true
	}
	return false
}

// LoadYAML reads a workbook file and constructs its decision table.
func LoadYAML(path string) (*decision.Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	return ParseYAML(b)
}

// ParseYAML constructs a decision table from workbook YAML bytes.
func ParseYAML(b []byte) (*decision.Table, error) {
	var wb Workbook
	if err := yaml.Unmarshal(b, &wb); err != nil {
		return nil, fmt.Errorf("parse workbook: %w", err)
	}
	return wb.Table()
}

// Table converts the parsed workbook into the immutable core form. Shape
// mismatches surface from the table constructor.
func (wb *Workbook) Table() (*decision.Table, error) {
	names := make([]string, len(wb.Alternatives))
	scores := make([][]float64, len(wb.Alternatives))
	for i, alt := range wb.Alternatives {
		names[i] = alt.Name
		row := make([]float64, len(alt.Scores))
		for j, s := range alt.Scores {
			row[j] = float64(s)
		}
		scores[i] = row
	}
	return decision.New(wb.Criteria, wb.Weights, names, scores)
}
