// Command promptline runs the interactive demo programs built on the
// promptline input helpers.
package main

import (
	"os"

	"github.com/rshade/promptline/internal/cli"
	"github.com/rshade/promptline/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps failure to a process exit code.
// Split from main so tests can exercise it.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
