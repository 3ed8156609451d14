package commands

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/attrlang/asl-go/asl"
	"github.com/attrlang/asl-go/cli/internal/ui"
	"github.com/attrlang/asl-go/cli/internal/watch"
)

var deriveCmd = &cobra.Command{
	Use:   "derive [schema-path]",
	Short: "Derive parser and checker artifacts from a schema",
	Long: `Derive the artifacts a compiler consumes from an attribute schema.

This command will:
- Parse and validate the schema file
- Build the spelling registry
- Derive attribute identities, dispatch entries, AST classes and
  propagation rules
- Display the derived artifacts`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDerive,
}

var (
	deriveSchemaPath string
	deriveWatch      bool
	deriveWatchOnly  bool
)

func init() {
	deriveCmd.Flags().StringVarP(&deriveSchemaPath, "schema", "s", "schema.attrs", "Path to schema file")
	deriveCmd.Flags().BoolVarP(&deriveWatch, "watch", "w", false, "Watch schema file for changes")
	deriveCmd.Flags().BoolVar(&deriveWatchOnly, "watch-only", false, "Only watch, don't derive initially")

	rootCmd.AddCommand(deriveCmd)
}

func runDerive(cmd *cobra.Command, args []string) error {
	schemaPath := getSchemaPath(deriveSchemaPath, args)

	if deriveWatch || deriveWatchOnly {
		return runDeriveWatch(schemaPath, !deriveWatchOnly)
	}

	ui.PrintHeader("ASL", "Derive Artifacts")
	return deriveOnce(schemaPath)
}

func deriveOnce(schemaPath string) error {
	spinner, _ := ui.PrintSpinner("Deriving artifacts...")

	artifacts, _, err := loadArtifacts(schemaPath)
	spinner.Stop()
	if err != nil {
		return err
	}

	printDispatch(artifacts)
	printClasses(artifacts)
	printPropagation(artifacts)

	ui.PrintSuccess("Derived %d identities from %s", len(artifacts.Identities()), schemaPath)
	return nil
}

func runDeriveWatch(schemaPath string, runNow bool) error {
	ui.PrintHeader("ASL", "Derive Artifacts (watch mode)")
	ui.PrintInfo("Watching %s for changes. Press Ctrl+C to stop.", schemaPath)
	fmt.Println()

	watcher, err := watch.NewWatcher(schemaPath, func() error {
		// Keep watching through schema errors; they are already printed.
		if err := deriveOnce(schemaPath); err != nil {
			ui.PrintError("%v", err)
		}
		fmt.Println()
		return nil
	})
	if err != nil {
		return err
	}
	defer watcher.Stop()

	if err := watcher.Start(runNow); err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	fmt.Println()
	ui.PrintInfo("Stopped watching.")
	return nil
}

func printDispatch(artifacts *asl.Artifacts) {
	entries := artifacts.Dispatch()
	if len(entries) == 0 {
		return
	}

	ui.PrintSection("Parser Dispatch")
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		namespace := entry.Namespace
		if namespace == "" {
			namespace = "(unqualified)"
		}
		rows = append(rows, []string{
			namespace,
			entry.Spelling,
			entry.Identity.Record.Name,
			strconv.FormatBool(entry.Late),
		})
	}
	ui.PrintTable([]string{"Namespace", "Spelling", "Attribute", "Late"}, rows)
	fmt.Println()
}

func printClasses(artifacts *asl.Artifacts) {
	classes := artifacts.Classes()
	if len(classes) == 0 {
		return
	}

	ui.PrintSection("AST Classes")
	rows := make([][]string, 0, len(classes))
	for _, class := range classes {
		fields := make([]string, 0, len(class.Fields))
		for _, field := range class.Fields {
			fields = append(fields, fmt.Sprintf("%s %s", field.Name, field.Kind))
		}
		rows = append(rows, []string{class.Name, strings.Join(fields, ", ")})
	}
	ui.PrintTable([]string{"Class", "Fields"}, rows)
	fmt.Println()
}

func printPropagation(artifacts *asl.Artifacts) {
	identities := artifacts.Identities()
	if len(identities) == 0 {
		return
	}

	ui.PrintSection("Propagation Rules")
	rows := make([][]string, 0, len(identities))
	for _, identity := range identities {
		rows = append(rows, []string{
			identity.DisplayName(),
			identity.Propagation.Level.String(),
			strconv.FormatBool(identity.Propagation.Clone),
			strconv.FormatBool(identity.NeedsReevaluation),
		})
	}
	ui.PrintTable([]string{"Attribute", "Level", "Clone", "Re-evaluate"}, rows)
	fmt.Println()
}
