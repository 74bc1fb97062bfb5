package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"cruxlang.org/go"
	"cruxlang.org/go/errors"
)

func newValidateCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <input>",
		Short: "report whether a V-source file tokenizes and parses",
		Args: requireExactlyOneArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0])
		},
	}
	return cmd
}

func runValidate(cmd *cobra.Command, input string) error {
	src, err := os.ReadFile(input)
	if err != nil {
		return newIOError(err)
	}

	err = crux.Validate(input, src)
	if err == nil {
		return nil
	}

	allErrors, _ := cmd.Flags().GetBool(string(flagAllErrors))
	var list errors.List
	if errors.As(err, &list) && !allErrors && len(list) > 0 {
		err = list[0]
	}
	return err
}
