// cmd/fundscope/check.go
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fundscope/internal/common/logger"
	"fundscope/internal/dataset"
)

var checkCmd = &cobra.Command{
	Use:   "check <dataset.json>",
	Short: "Validate a dataset document and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := dataset.NewLoader(logger.NewNoOpLogger())
		ds, err := loader.Load(args[0])
		if err != nil {
			return err
		}

		stats := ds.Stats()
		fmt.Printf("dataset OK (snapshot %s)\n", ds.SnapshotID)
		fmt.Printf("  companies:       %d\n", stats.Companies)
		fmt.Printf("  milestones:      %d\n", stats.Milestones)
		fmt.Printf("  milestone types: %d\n", len(ds.Types))
		if stats.InvalidDates > 0 {
			fmt.Printf("  invalid dates:   %d (excluded from date-range filters)\n", stats.InvalidDates)
		}
		if len(stats.UnknownTypes) > 0 {
			fmt.Printf("  unknown types:   %s (rendered with raw key, neutral color)\n",
				strings.Join(stats.UnknownTypes, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
