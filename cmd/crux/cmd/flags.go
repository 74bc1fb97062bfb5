package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Common flags, named the way cmd/cue/cmd/flags.go names its own.
const (
	flagOutput    flagName = "output"
	flagAllErrors flagName = "all-errors"
)

func addGlobalFlags(f *pflag.FlagSet) {
	f.StringP(string(flagOutput), "o", "", "output file, or - for stdout (default stdout)")
	f.BoolP(string(flagAllErrors), "E", false, "print all available errors, not just the first")
}

type flagName string

// ensureAdded detects use of a flag that was never registered on this
// command's flag set, the same guard cmd/cue/cmd/flags.go uses.
func (f flagName) ensureAdded(cmd *Command) {
	if cmd.Flags().Lookup(string(f)) == nil {
		panic(fmt.Sprintf("Cmd %q uses flag %q without adding it", cmd.Name(), f))
	}
}

func (f flagName) Bool(cmd *Command) bool {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetBool(string(f))
	return v
}

func (f flagName) String(cmd *Command) string {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetString(string(f))
	return v
}
