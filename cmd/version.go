// Package cmd implements the command-line interface for xtrex.
package cmd

import (
	"os"
	"runtime"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/xtrex-cli/xtrex/constant"
	"github.com/xtrex-cli/xtrex/style"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

// versionCmd displays application version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		cmd.Printf("%s %s\n", style.Fg(style.Purple)(constant.Xtrex), style.Bold(constant.Version))
		cmd.Printf("%s %s/%s\n", style.Faint("platform"), runtime.GOOS, runtime.GOARCH)
	},
}
