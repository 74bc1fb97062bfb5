package cmd

import (
	"github.com/spf13/cobra"

	"cruxlang.org/go"
)

func newReduceCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reduce <input>",
		Short: "translate S-source to its canonical V-source rendering",
		Args: requireExactlyOneArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args[0], crux.Reduce)
		},
	}
	return cmd
}
