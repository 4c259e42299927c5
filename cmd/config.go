package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/jmorande/carscope/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set carscope configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := effectiveConfig()
		if err != nil {
			return err
		}
		fmt.Printf("dataset: %s\n", c.Dataset)
		fmt.Printf("output_dir: %s\n", c.OutputDir)
		fmt.Printf("quantile_low: %.3f\n", c.QuantileLow)
		fmt.Printf("quantile_high: %.3f\n", c.QuantileHigh)
		fmt.Printf("derive_manufacturer: %t\n", c.DeriveManufacturer)
		fmt.Printf("min_manufacturer_count: %d\n", c.MinManufacturers)
		fmt.Printf("bins: %d\n", c.Bins)
		fmt.Printf("top_k: %d\n", c.TopK)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c, err := effectiveConfig()
		if err != nil {
			return err
		}
		switch key {
		case "dataset":
			c.Dataset = val
		case "output_dir":
			c.OutputDir = val
		case "quantile_low", "quantile_high":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 0 || f > 1 {
				return fmt.Errorf("invalid %s: %s (expect a fraction in [0,1])", key, val)
			}
			if key == "quantile_low" {
				c.QuantileLow = f
			} else {
				c.QuantileHigh = f
			}
		case "derive_manufacturer":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid derive_manufacturer: %s", val)
			}
			c.DeriveManufacturer = b
		case "min_manufacturer_count", "bins", "top_k":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid %s: %s (expect a non-negative integer)", key, val)
			}
			switch key {
			case "min_manufacturer_count":
				c.MinManufacturers = n
			case "bins":
				c.Bins = n
			case "top_k":
				c.TopK = n
			}
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		cfg = c
		fmt.Printf("✓ %s set\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
