package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/jmorande/carscope/internal/dashboard"
	"github.com/jmorande/carscope/internal/prep"
	"github.com/jmorande/carscope/internal/utils"
	"github.com/spf13/cobra"
)

var (
	expHistogram bool
	expScatter   bool
	expTop       bool
	expViolin    bool
	expCompare   bool
	expManuf1    string
	expManuf2    string
	expBins      int
	expTopK      int
	expOutDir    string
	expNoDerive  bool
	expReload    bool
)

var exploreCmd = &cobra.Command{
	Use:   "explore [dataset]",
	Short: "Render the selected charts for a listings dataset",
	Long: `Explore runs one dashboard pass: it loads the dataset (cached per process),
computes 1st/99th percentile outlier bounds on price and odometer, derives
manufacturers, filters rows, and renders every selected chart as a PNG.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := effectiveConfig()
		if err != nil {
			return err
		}
		path := c.Dataset
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return fmt.Errorf("no dataset given; pass a path or set dataset in config")
		}

		sel := dashboard.Selections{
			PriceHistogram:       expHistogram,
			MileageScatter:       expScatter,
			TopManufacturer:      expTop,
			TypeViolin:           expViolin,
			CompareManufacturers: expCompare,
			Manufacturer1:        expManuf1,
			Manufacturer2:        expManuf2,
			Bins:                 pickInt(expBins, c.Bins),
			TopK:                 pickInt(expTopK, c.TopK),
		}
		if !sel.Any() {
			return fmt.Errorf("no charts selected; use --histogram, --scatter, --top, --violin, or --compare")
		}

		if expReload {
			tables.Invalidate(path)
		}
		table, err := tables.Get(path)
		if err != nil {
			return err
		}

		opt := prep.Options{
			LowQuantile:          c.QuantileLow,
			HighQuantile:         c.QuantileHigh,
			DeriveManufacturer:   c.DeriveManufacturer && !expNoDerive,
			MinManufacturerCount: c.MinManufacturers,
		}
		snap, err := prep.Build(table, opt)
		if err != nil {
			return err
		}
		if debug {
			fmt.Printf("loaded %d listings, %d after filtering\n", table.Len(), len(snap.Filtered))
			fmt.Printf("price bounds [%.2f, %.2f], odometer bounds [%.2f, %.2f]\n",
				snap.Price.Low, snap.Price.High, snap.Odometer.Low, snap.Odometer.High)
		}

		res, err := dashboard.Run(snap, sel)
		if err != nil {
			return err
		}

		outDir := expOutDir
		if outDir == "" {
			outDir = c.OutputDir
		}
		if err := utils.EnsureDir(outDir); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		for _, a := range res.Artifacts {
			name := fmt.Sprintf("%s-%s.png", a.Kind, a.ID[:8])
			dst := filepath.Join(outDir, name)
			if err := utils.SafeWriteFile(dst, a.PNG); err != nil {
				return fmt.Errorf("write %s: %w", dst, err)
			}
			fmt.Printf("✓ %s → %s\n", a.Title, dst)
		}
		for name, reason := range res.Skipped {
			fmt.Printf("⚠ %s skipped: %s\n", name, reason)
		}
		for _, w := range res.Warnings {
			fmt.Printf("⚠ %s\n", w)
		}
		return nil
	},
}

func pickInt(flag, fallback int) int {
	if flag > 0 {
		return flag
	}
	return fallback
}

func init() {
	exploreCmd.Flags().BoolVar(&expHistogram, "histogram", false, "render the price histogram")
	exploreCmd.Flags().BoolVar(&expScatter, "scatter", false, "render the price vs mileage scatter plot")
	exploreCmd.Flags().BoolVar(&expTop, "top", false, "render the top-manufacturers grouped histogram")
	exploreCmd.Flags().BoolVar(&expViolin, "violin", false, "render the price density comparison by vehicle type")
	exploreCmd.Flags().BoolVar(&expCompare, "compare", false, "render the two-manufacturer price comparison")
	exploreCmd.Flags().StringVar(&expManuf1, "manufacturer-1", "", "first manufacturer selector for --compare")
	exploreCmd.Flags().StringVar(&expManuf2, "manufacturer-2", "", "second manufacturer selector for --compare")
	exploreCmd.Flags().IntVar(&expBins, "bins", 0, "histogram bin count (overrides config)")
	exploreCmd.Flags().IntVar(&expTopK, "top-k", 0, "how many manufacturers the top chart ranks (overrides config)")
	exploreCmd.Flags().StringVar(&expOutDir, "out", "", "output directory for PNG artifacts (overrides config)")
	exploreCmd.Flags().BoolVar(&expNoDerive, "no-manufacturer", false, "skip manufacturer derivation and its frequency filter")
	exploreCmd.Flags().BoolVar(&expReload, "reload", false, "invalidate the cached table and re-read the file")
	rootCmd.AddCommand(exploreCmd)
}
