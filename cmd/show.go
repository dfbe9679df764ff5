package cmd

import (
	"path/filepath"

	"github.com/KaramelBytes/kepner-cli/internal/render"
	"github.com/spf13/cobra"
)

var showOutput string

var showCmd = &cobra.Command{
	Use:   "show <table>",
	Short: "Render a decision table with weighted scores and totals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(args[0])
		if err != nil {
			return err
		}
		opt := renderOpts()
		rep := render.NewReport(filepath.Base(args[0]))
		rep.AddSection("DECISION TABLE", render.Table(t, opt))
		rep.AddSection("ALTERNATIVES", render.Legend(t))
		addBestSection(rep, t)
		return emit(rep.Markdown(), showOutput)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "", "optional path to write the report")
}
