package cmd

import (
	"fmt"

	"github.com/jmorande/carscope/internal/prep"
	"github.com/jmorande/carscope/internal/stats"
	"github.com/spf13/cobra"
)

var (
	manTop int
	manAll bool
)

var manufacturersCmd = &cobra.Command{
	Use:   "manufacturers [dataset]",
	Short: "List the manufacturers selectable for comparison",
	Long: `Manufacturers prints the selector option list: every derived manufacturer
whose full-table listing count meets the frequency threshold, with counts taken
over the filtered listing set. Use --all to include manufacturers below the
threshold.`,
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
		table, err := tables.Get(path)
		if err != nil {
			return err
		}
		opt := prep.Options{
			LowQuantile:          c.QuantileLow,
			HighQuantile:         c.QuantileHigh,
			DeriveManufacturer:   true,
			MinManufacturerCount: c.MinManufacturers,
		}
		if manAll {
			opt.MinManufacturerCount = 0
		}
		snap, err := prep.Build(table, opt)
		if err != nil {
			return err
		}

		counts := snap.FilteredCounts()
		if manTop > 0 {
			for _, tc := range stats.TopK(counts, manTop) {
				fmt.Printf("- %s: %d\n", tc.Value, tc.Count)
			}
			return nil
		}
		if len(snap.Manufacturers) == 0 {
			fmt.Println("(no manufacturers pass the frequency threshold)")
			return nil
		}
		for _, m := range snap.Manufacturers {
			fmt.Printf("- %s: %d\n", m, counts[m])
		}
		return nil
	},
}

func init() {
	manufacturersCmd.Flags().IntVar(&manTop, "top", 0, "show only the K most frequent manufacturers")
	manufacturersCmd.Flags().BoolVar(&manAll, "all", false, "ignore the minimum-count threshold")
	rootCmd.AddCommand(manufacturersCmd)
}
