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
	Dataset   string `mapstructure:"dataset" yaml:"dataset"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// Preparation pipeline knobs.
	QuantileLow        float64 `mapstructure:"quantile_low" yaml:"quantile_low"`
	QuantileHigh       float64 `mapstructure:"quantile_high" yaml:"quantile_high"`
	DeriveManufacturer bool    `mapstructure:"derive_manufacturer" yaml:"derive_manufacturer"`
	MinManufacturers   int     `mapstructure:"min_manufacturer_count" yaml:"min_manufacturer_count"`

	// Chart knobs.
	Bins int `mapstructure:"bins" yaml:"bins"`
	TopK int `mapstructure:"top_k" yaml:"top_k"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.carscope/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".carscope")
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
	v.SetEnvPrefix("CARSCOPE")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("dataset", "vehicles_us.csv")
	v.SetDefault("output_dir", "charts")
	v.SetDefault("quantile_low", 0.01)
	v.SetDefault("quantile_high", 0.99)
	v.SetDefault("derive_manufacturer", true)
	v.SetDefault("min_manufacturer_count", 50)
	v.SetDefault("bins", 50)
	v.SetDefault("top_k", 10)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".carscope")
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
