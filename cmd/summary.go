package cmd

import (
	"fmt"

	"github.com/jmorande/carscope/internal/dataset"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [dataset]",
	Short: "Print a per-column overview of a listings dataset",
	Args:  cobra.MaximumNArgs(1),
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
		fmt.Print(dataset.Summarize(table).Markdown())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
