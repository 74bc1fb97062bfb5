package cmd

import (
	"github.com/spf13/cobra"

	"cruxlang.org/go"
)

func newOxidizeCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oxidize <input>",
		Short: "translate V-source back to S-source",
		Args: requireExactlyOneArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args[0], crux.Oxidize)
		},
	}
	return cmd
}
