package cmd

import (
	"path/filepath"

	"github.com/KaramelBytes/kepner-cli/internal/render"
	"github.com/spf13/cobra"
)

var (
	normMaxScore float64
	normOutput   string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <table>",
	Short: "Render a table with weights rescaled to 100 and scores in [0,1]",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(args[0])
		if err != nil {
			return err
		}
		maxScore := activeConfig().MaxScore
		if cmd.Flags().Changed("max-score") {
			maxScore = normMaxScore
		}
		norm, err := t.Normalized(maxScore)
		if err != nil {
			return err
		}
		opt := renderOpts()
		rep := render.NewReport(filepath.Base(args[0]))
		rep.AddSection("NORMALIZED TABLE", render.Table(norm, opt))
		rep.AddSection("ALTERNATIVES", render.Legend(norm))
		addBestSection(rep, norm)
		return emit(rep.Markdown(), normOutput)
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	normalizeCmd.Flags().Float64Var(&normMaxScore, "max-score", 0, "assumed maximum raw score (overrides config)")
	normalizeCmd.Flags().StringVarP(&normOutput, "output", "o", "", "optional path to write the report")
}
