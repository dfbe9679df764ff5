package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/kepner-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set Kepner configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		fmt.Printf("max_score: %g\n", c.MaxScore)
		fmt.Printf("sensitivity_factors: %s\n", formatFactors(c.Factors))
		fmt.Printf("precision: %d\n", c.Precision)
		fmt.Printf("missing_marker: %s\n", c.MissingMarker)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "max_score":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f == 0 {
				return fmt.Errorf("invalid nonzero float for max_score: %v", val)
			}
			cfg.MaxScore = f
		case "sensitivity_factors":
			var factors []float64
			for _, part := range strings.Split(val, ",") {
				f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
				if err != nil {
					return fmt.Errorf("invalid float in sensitivity_factors: %v", part)
				}
				factors = append(factors, f)
			}
			if len(factors) == 0 {
				return fmt.Errorf("sensitivity_factors must not be empty")
			}
			cfg.Factors = factors
		case "precision":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid non-negative int for precision: %v", val)
			}
			cfg.Precision = i
		case "missing_marker":
			if val == "" {
				return fmt.Errorf("missing_marker must not be empty")
			}
			cfg.MissingMarker = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func formatFactors(factors []float64) string {
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
