package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/recheck/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [puzzles...]",
		Short: "Recompile puzzles and compare them with the committed artifacts",
		Long: "Recompile every puzzle listed in the manifest, or only the named ones, and compare\n" +
			"the result with the committed <name>.hex artifact. The run stops at the first\n" +
			"puzzle whose output differs unless --keep-going is set.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keepGoing, _ := cmd.Flags().GetBool("keep-going")
			restore, _ := cmd.Flags().GetBool("restore")

			return c.app.Check(cmd.Context(), args, app.CheckOptions{
				KeepGoing: keepGoing,
				Restore:   restore,
			})
		},
	}
	cmd.Flags().BoolP("keep-going", "k", false, "Check every puzzle instead of stopping at the first failure")
	cmd.Flags().BoolP("restore", "r", false, "Put the committed artifact back when a puzzle fails")
	return cmd
}
