package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is stamped by -ldflags on release builds. The self-update
// checker compares it against the latest GitHub release tag.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("eduvoyager %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)
	},
}
