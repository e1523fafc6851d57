package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the faster-beamer version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if versionShort {
			cmd.Println(version)
			return
		}
		cmd.Println(versionLine(version, runtime.Version(), runtime.GOOS+"/"+runtime.GOARCH))
	},
}

// versionLine formats the release with the toolchain it was built with.
func versionLine(release, goVersion, platform string) string {
	return fmt.Sprintf("faster-beamer %s (%s, %s)", release, goVersion, platform)
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the release")
	rootCmd.AddCommand(versionCmd)
}
