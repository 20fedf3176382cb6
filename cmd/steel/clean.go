package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"steel/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the steel token cache",
	Long:  "Remove every token stream stored by `steel tokenize --cache`.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cache, err := driver.OpenDiskCache("steel")
		if err != nil {
			return fmt.Errorf("failed to open token cache: %w", err)
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to clear %q: %w", cache.Dir(), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", cache.Dir())
		return nil
	},
}
