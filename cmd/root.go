package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/jmorande/carscope/internal/config"
	"github.com/jmorande/carscope/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired later to config/viper)
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global

	// tables memoizes loaded datasets so repeated commands in one process reuse
	// the same in-memory table.
	tables = dataset.NewCache()
)

var rootCmd = &cobra.Command{
	Use:   "carscope",
	Short: "carscope: explore a used-vehicle listings dataset",
	Long:  `carscope loads a vehicle listings CSV, filters price and mileage outliers, derives manufacturers, and renders dashboard-style charts as PNG files.`,
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
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.carscope/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// effectiveConfig returns the loaded config, falling back to a fresh load when
// OnInitialize did not run (tests invoke RunE functions directly).
func effectiveConfig() (*cfgpkg.Global, error) {
	if cfg != nil {
		return cfg, nil
	}
	return cfgpkg.Load(cfgFile)
}
