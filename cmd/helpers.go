package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/kepner-cli/internal/decision"
	"github.com/KaramelBytes/kepner-cli/internal/render"
	"github.com/KaramelBytes/kepner-cli/internal/tableio"
	"github.com/KaramelBytes/kepner-cli/internal/utils"
)

// loadTable reads a decision table from a YAML workbook or a CSV file,
// chosen by extension.
func loadTable(path string) (*decision.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return tableio.LoadYAML(path)
	case ".csv":
		return tableio.LoadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported table format %q (use .yaml, .yml, or .csv)", filepath.Ext(path))
	}
}

// renderOpts builds formatting options from the effective configuration.
func renderOpts() render.Options {
	c := activeConfig()
	return render.Options{Precision: c.Precision, MissingMarker: c.MissingMarker}
}

// emit prints the report to stdout, or writes it to outputPath when set.
func emit(md, outputPath string) error {
	if outputPath == "" {
		fmt.Println(md)
		return nil
	}
	if err := utils.SafeWriteFile(outputPath, []byte(md)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("✓ Wrote report to %s\n", outputPath)
	return nil
}

// addBestSection appends the winner, or warns when no total is known.
func addBestSection(rep *render.Report, t *decision.Table) {
	best, err := t.BestAlternative()
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: no best alternative: %v\n", err)
		return
	}
	rep.AddSection("BEST ALTERNATIVE", fmt.Sprintf("#%d %s\n", best+1, t.Alternatives()[best]))
}
