package tableio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/KaramelBytes/kepner-cli/internal/decision"
)

// CSV layout: the header names the criteria after an alternative-name column,
// a reserved "weights" row carries the criterion weights, and every remaining
// row scores one alternative. Empty cells and the missing markers read as
// unknown measurements.
//
//	alternative,Safety,Cost
//	weights,10,8
//	Lexus RX 350,8,7
//	Audi A6,9,?

// LoadCSV reads a CSV decision table file.
func LoadCSV(path string) (*decision.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv table needs a header row and a weights row")
	}
	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("csv table needs at least one criterion column")
	}
	criteria := make([]string, len(header)-1)
	for i, name := range header[1:] {
		criteria[i] = strings.TrimSpace(name)
	}

	wrow := records[1]
	if !strings.EqualFold(strings.TrimSpace(wrow[0]), "weights") {
		return nil, fmt.Errorf("second csv row must be the reserved \"weights\" row, got %q", wrow[0])
	}
	weights := make([]float64, len(wrow)-1)
	for i, cell := range wrow[1:] {
		w, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, fmt.Errorf("weight for %s: %w", criteria[i], err)
		}
		weights[i] = w
	}

	var alternatives []string
	var scores [][]float64
	for n, rec := range records[2:] {
		alternatives = append(alternatives, strings.TrimSpace(rec[0]))
		row := make([]float64, len(rec)-1)
		for i, cell := range rec[1:] {
			s, err := parseScore(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", n+3, err)
			}
			row[i] = s
		}
		scores = append(scores, row)
	}
	return decision.New(criteria, weights, alternatives, scores)
}

func parseScore(cell string) (float64, error) {
	raw := strings.TrimSpace(cell)
	if isMissingMarker(raw) {
		return decision.Missing(), nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("score %q: %w", cell, err)
	}
	return f, nil
}
