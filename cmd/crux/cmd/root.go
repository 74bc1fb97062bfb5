// Package cmd implements the crux command-line tool: three subcommands
// (reduce, oxidize, validate) wired to the crux package's library entry
// points. It is modeled on cmd/cue/cmd's shape (a Command wrapping
// *cobra.Command, a flagName helper, a Main() int entry point) adapted
// to this tool's much smaller surface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cruxlang.org/go/errors"
)

// Command wraps the active cobra command the way cmd/cue/cmd.Command does.
type Command struct {
	*cobra.Command
	root *cobra.Command
}

// New builds the top-level crux command.
func New(args []string) *Command {
	root := &cobra.Command{
		Use:   "crux",
		Short: "crux translates between S-source and V-source.",

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	c := &Command{Command: root, root: root}
	addGlobalFlags(root.PersistentFlags())

	root.AddCommand(
		newReduceCmd(c),
		newOxidizeCmd(c),
		newValidateCmd(c),
	)
	root.SetArgs(args)
	return c
}

// usageError marks an argument or flag misuse, mapped to exit code 64.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newUsageError(err error) error { return &usageError{err} }

// requireExactlyOneArg is used as every subcommand's cobra.PositionalArgs,
// in place of cobra.ExactArgs, so a wrong argument count is classified as
// a usageError (exit code 64) rather than falling through to the generic
// transform-failure exit code.
func requireExactlyOneArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return newUsageError(fmt.Errorf("%s: expected exactly one input file argument", cmd.Name()))
	}
	return nil
}

// ioError marks a failure reading input or writing output, mapped to
// exit code 2.
type ioError struct{ err error }

func (e *ioError) Error() string { return e.err.Error() }
func (e *ioError) Unwrap() error { return e.err }

func newIOError(err error) error { return &ioError{err} }

// Main runs the crux tool and returns the code to pass to os.Exit, per
// spec.md §6: 0 success, 1 transform failure, 2 I/O failure, 64 usage
// error.
func Main() int {
	c := New(os.Args[1:])
	err := c.root.Execute()
	if err == nil {
		return 0
	}

	var ue *usageError
	if errors.As(err, &ue) {
		errors.Print(os.Stderr, ue.err, nil)
		return 64
	}
	var ie *ioError
	if errors.As(err, &ie) {
		errors.Print(os.Stderr, ie.err, nil)
		return 2
	}
	errors.Print(os.Stderr, err, nil)
	return 1
}
