package cmd

import (
	"path/filepath"

	"github.com/KaramelBytes/kepner-cli/internal/render"
	"github.com/spf13/cobra"
)

var imputeOutput string

var imputeCmd = &cobra.Command{
	Use:   "impute <table>",
	Short: "Fill missing scores from each row's nearest complete neighbor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(args[0])
		if err != nil {
			return err
		}
		imputed, err := t.Imputed()
		if err != nil {
			return err
		}
		opt := renderOpts()
		rep := render.NewReport(filepath.Base(args[0]))
		rep.AddSection("ORIGINAL TABLE", render.Table(t, opt))
		rep.AddSection("IMPUTED TABLE", render.Table(imputed, opt))
		rep.AddSection("ALTERNATIVES", render.Legend(imputed))
		addBestSection(rep, imputed)
		return emit(rep.Markdown(), imputeOutput)
	},
}

func init() {
	rootCmd.AddCommand(imputeCmd)
	imputeCmd.Flags().StringVarP(&imputeOutput, "output", "o", "", "optional path to write the report")
}
