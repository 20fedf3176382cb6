package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var mnemonicsCmd = &cobra.Command{
	Use:   "mnemonics [dir]",
	Short: "List the instruction names recognized as mnemonics",
	Long: `List the built-in mnemonics plus those added by the [lexer].mnemonics
key of the steel.toml that applies to [dir] (default: current directory).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		s, err := loadSettings(cmd, dir)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if s.manifest != nil && !s.quiet {
			fmt.Fprintf(out, "# %s\n", s.manifest.Path)
		}
		fmt.Fprintln(out, strings.Join(s.cfg.MnemonicSet().Names(), "\n"))
		return nil
	},
}
