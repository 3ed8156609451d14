package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/attrlang/asl-go/cli/internal/update"
	"github.com/attrlang/asl-go/cli/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE:  runVersion,
}

var versionCheckUpdate bool

func init() {
	versionCmd.Flags().BoolVar(&versionCheckUpdate, "check-update", false, "Check whether a newer release exists")

	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()
	fmt.Println(info.FullString())

	if versionCheckUpdate {
		fmt.Println()
		return update.CheckForUpdates(info.Version)
	}
	return nil
}
