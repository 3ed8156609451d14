package commands

import (
	"github.com/spf13/cobra"

	"github.com/attrlang/asl-go/cli/internal/ui"
	"github.com/attrlang/asl-go/cli/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "asl",
	Short: "Attribute schema toolkit",
	Long: `asl is the toolkit for Attribute Schema Language files.

An .attrs schema declares compiler attributes: their spellings, the
declarations they may attach to, their arguments, and how they propagate.
The toolkit validates schemas, derives the parser and checker artifacts,
and renders attribute documentation.`,
	Version:       version.Get().String(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point for the CLI
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError("%v", err)
		return err
	}
	return nil
}
