package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/KaramelBytes/kepner-cli/internal/render"
	"github.com/spf13/cobra"
)

var (
	senFactors []float64
	senOutput  string
)

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity <table>",
	Short: "Sweep weight perturbations and report ranking stability",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(args[0])
		if err != nil {
			return err
		}
		factors := activeConfig().Factors
		if cmd.Flags().Changed("factors") {
			factors = senFactors
		}
		if len(factors) == 0 {
			return fmt.Errorf("no perturbation factors configured")
		}
		results, err := t.Sensitivity(factors)
		if err != nil {
			return err
		}
		opt := renderOpts()
		rep := render.NewReport(filepath.Base(args[0]))
		rep.AddSection("DECISION TABLE", render.Table(t, opt))
		rep.AddSection("ALTERNATIVES", render.Legend(t))
		rep.AddSection("SENSITIVITY", render.Sensitivity(results, opt))
		return emit(rep.Markdown(), senOutput)
	},
}

func init() {
	rootCmd.AddCommand(sensitivityCmd)
	sensitivityCmd.Flags().Float64SliceVar(&senFactors, "factors", nil, "weight multipliers to sweep, e.g. 0.9,1.1 (overrides config)")
	sensitivityCmd.Flags().StringVarP(&senOutput, "output", "o", "", "optional path to write the report")
}
