package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/KaramelBytes/kepner-cli/internal/decision"
	"github.com/google/uuid"
)

// Options controls numeric formatting of rendered tables.
type Options struct {
	// Precision is the number of decimal places for weights and scores.
	Precision int
	// MissingMarker is printed in place of unknown cells.
	MissingMarker string
}

// DefaultOptions returns the formatting used when no config is loaded.
func DefaultOptions() Options {
	return Options{Precision: 2, MissingMarker: "?"}
}

// Report is a rendered analysis: a titled sequence of sections under a unique
// run identifier, in a markdown-friendly form.
type Report struct {
	ID          string
	Title       string
	GeneratedAt time.Time

	sections []section
}

type section struct {
	name string
	body string
}

// NewReport creates an empty report stamped with a fresh run ID.
func NewReport(title string) *Report {
	return &Report{ID: uuid.NewString(), Title: title, GeneratedAt: time.Now()}
}

// AddSection appends a named section. Bodies are emitted verbatim.
func (r *Report) AddSection(name, body string) {
	r.sections = append(r.sections, section{name: name, body: body})
}

// Markdown renders the report header and sections.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DECISION ANALYSIS]\n")
	fmt.Fprintf(&b, "Title: %s\n", r.Title)
	fmt.Fprintf(&b, "Run: %s\n", r.ID)
	fmt.Fprintf(&b, "Generated: %s\n", r.GeneratedAt.Format(time.RFC3339))
	for _, s := range r.sections {
		fmt.Fprintf(&b, "\n[%s]\n", s.name)
		b.WriteString(s.body)
		if !strings.HasSuffix(s.body, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Table renders the classic decision-table figure: one row per criterion with
// its weight, the per-alternative scores (S1..Sm), the per-alternative
// weighted scores (WS1..WSm), and a TOTALS row. The table is read-only input;
// column positions follow the order of Alternatives (see Legend).
func Table(t *decision.Table, opt Options) string {
	criteria := t.Criteria()
	alternatives := t.Alternatives()
	weights := t.Weights()
	scores := t.Scores()

	nameW := len("criterion")
	for _, c := range criteria {
		if len(c) > nameW {
			nameW = len(c)
		}
	}
	cellW := opt.Precision + 5
	wsW := opt.Precision + 7

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s %*s", nameW, "criterion", cellW, "W")
	for i := range alternatives {
		fmt.Fprintf(&b, " %*s", cellW, fmt.Sprintf("S%d", i+1))
	}
	for i := range alternatives {
		fmt.Fprintf(&b, " %*s", wsW, fmt.Sprintf("WS%d", i+1))
	}
	b.WriteByte('\n')

	for c, name := range criteria {
		fmt.Fprintf(&b, "%-*s %s", nameW, name, cell(weights[c], cellW, opt))
		for a := range alternatives {
			fmt.Fprintf(&b, " %s", cell(scores[a][c], cellW, opt))
		}
		for a := range alternatives {
			fmt.Fprintf(&b, " %s", cell(weights[c]*scores[a][c], wsW, opt))
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "%-*s %*s", nameW, "TOTALS", cellW, "")
	for range alternatives {
		fmt.Fprintf(&b, " %*s", cellW, "")
	}
	for a := range alternatives {
		total, err := t.TotalWeightedScore(a)
		if err != nil {
			total = decision.Missing()
		}
		fmt.Fprintf(&b, " %s", cell(total, wsW, opt))
	}
	b.WriteByte('\n')
	return b.String()
}

// Legend maps the S column numbers back to alternative names, one per line.
func Legend(t *decision.Table) string {
	var b strings.Builder
	for i, name := range t.Alternatives() {
		fmt.Fprintf(&b, "S%d = %s\n", i+1, name)
	}
	return b.String()
}

// Sensitivity renders the perturbation sweep, one probe per line in sweep
// order.
func Sensitivity(results []decision.Perturbation, opt Options) string {
	nameW := 0
	for _, r := range results {
		if len(r.Criterion) > nameW {
			nameW = len(r.Criterion)
		}
	}
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "%-*s weight=%.*f -> best #%d %s\n",
			nameW, r.Criterion, opt.Precision, r.Weight, r.Best, r.BestName)
	}
	return b.String()
}

// cell formats one numeric cell, substituting the missing marker for unknown
// values.
func cell(x float64, width int, opt Options) string {
	if decision.IsMissing(x) {
		return fmt.Sprintf("%*s", width, opt.MissingMarker)
	}
	return fmt.Sprintf("%*.*f", width, opt.Precision, x)
}
