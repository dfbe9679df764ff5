package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// MaxScore is the assumed top of the raw scoring scale used by normalize.
	MaxScore float64 `mapstructure:"max_score" yaml:"max_score"`
	// Factors are the weight multipliers swept by sensitivity analysis.
	Factors []float64 `mapstructure:"sensitivity_factors" yaml:"sensitivity_factors"`
	// Precision is the number of decimal places in rendered tables.
	Precision int `mapstructure:"precision" yaml:"precision"`
	// MissingMarker is printed in place of unknown scores.
	MissingMarker string `mapstructure:"missing_marker" yaml:"missing_marker"`
}

// Defaults returns the built-in configuration used when no file or
// environment overrides are present.
func Defaults() *Global {
	return &Global{
		MaxScore:      10,
		Factors:       []float64{0.9, 1.1},
		Precision:     2,
		MissingMarker: "?",
	}
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.kepner/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".kepner")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("KEPNER")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("max_score", d.MaxScore)
	v.SetDefault("sensitivity_factors", d.Factors)
	v.SetDefault("precision", d.Precision)
	v.SetDefault("missing_marker", d.MissingMarker)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".kepner")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
