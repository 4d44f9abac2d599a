// Command logoscript runs programs written in the turtle-drawing
// scripting language implemented by this repository.
package main

import (
	"os"

	"github.com/cwbudde/logoscript/cmd/logoscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
