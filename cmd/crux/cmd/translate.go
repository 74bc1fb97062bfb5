package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// runTranslate is the shared body of reduce and oxidize: read input, run
// translate, write the result to --output or stdout.
func runTranslate(cmd *cobra.Command, input string, translate func(string, []byte) ([]byte, error)) error {
	src, err := os.ReadFile(input)
	if err != nil {
		return newIOError(err)
	}
	out, err := translate(input, src)
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString(string(flagOutput))
	if outPath == "" {
		// Mirrors cmd/cue/cmd/root.go's CUE_STATS_FILE check: an unset flag
		// falls back to the environment before defaulting to stdout.
		outPath = os.Getenv("CRUX_OUTPUT")
	}
	if outPath == "" || outPath == "-" {
		if _, err := cmd.OutOrStdout().Write(out); err != nil {
			return newIOError(err)
		}
		return nil
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return newIOError(err)
	}
	return nil
}
