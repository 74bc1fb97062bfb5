// Command crux translates source between the S and V surface syntaxes.
package main

import (
	"os"

	"cruxlang.org/go/cmd/crux/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
