package cli

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("skimma version %s\n", resolveVersion())
	},
}

// resolveVersion prefers the release version injected at build time. Dev
// builds fall back to the module version the Go toolchain recorded, so
// `go install ...@v1.2.3` still reports something useful.
func resolveVersion() string {
	if version != "dev" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return version
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
