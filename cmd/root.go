package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/kepner-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool
	// Formatting flag (overrides config if set)
	flagPrecision int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "kepner",
	Short: "Kepner CLI: weighted decision analysis from the command line",
	Long: `Kepner evaluates decision tables: alternatives scored against weighted
criteria. It renders weighted scores and totals, selects the best alternative,
sweeps weight sensitivity, and fills in missing scores by nearest-neighbor
imputation.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.kepner/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().IntVar(&flagPrecision, "precision", 0, "decimal places in rendered tables (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("precision") && flagPrecision > 0 {
		cfg.Precision = flagPrecision
	}
	if debug {
		fmt.Fprintf(os.Stderr, "config: max_score=%g factors=%v precision=%d marker=%q\n",
			cfg.MaxScore, cfg.Factors, cfg.Precision, cfg.MissingMarker)
	}
}

// activeConfig returns the loaded configuration, or the built-in defaults
// when config loading failed.
func activeConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return cfgpkg.Defaults()
}
