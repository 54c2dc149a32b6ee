package cli

import (
	"fmt"
	"io"
	"os"
)

// For proper builds, these variables should be set via ldflags.
var version = "development"
var hash = "unknown"

// VersionCommand shows the version.
type VersionCommand struct {
}

// Execute prints the version.
// (This gets called by `go-flags` when `version` is provided on the command
// line)
func (command *VersionCommand) Execute(args []string) error {
	showVersion(os.Stdout)
	return nil
}

func showVersion(out io.Writer) {
	fmt.Fprintf(out, "%s (%s)\n", version, hash)
}
