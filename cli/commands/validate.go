package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/attrlang/asl-go/asl"
	"github.com/attrlang/asl-go/cli/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate [schema-path]",
	Short: "Validate an attribute schema file",
	Long: `Validate an attribute schema file for syntax and definition errors.

This command will:
- Parse the schema file
- Check for syntax errors
- Check every record, subject and argument for definition errors
- Display validation results`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var (
	validateSchemaPath string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchemaPath, "schema", "s", "schema.attrs", "Path to schema file")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	schemaPath := getSchemaPath(validateSchemaPath, args)

	ui.PrintHeader("ASL", "Validate Schema")

	content, err := readSchema(schemaPath)
	if err != nil {
		return err
	}

	file, diags := asl.ParseSchema(content)
	if diags.HasErrors() {
		ui.PrintError("Schema parsing failed:")
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(schemaPath, content))
		return fmt.Errorf("schema has parsing errors")
	}

	reg, diags := asl.BuildRegistry(content, stubPredicates(file))
	if diags.HasErrors() {
		ui.PrintError("Schema validation failed:")
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(schemaPath, content))
		return fmt.Errorf("schema has definition errors")
	}

	if len(diags.Warnings()) > 0 {
		ui.PrintWarning("Schema validated with warnings:")
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.WarningsToPrettyString(schemaPath, content))
	}

	absPath, _ := filepath.Abs(schemaPath)
	ui.PrintSuccess("Schema is valid: %s", absPath)

	// Print summary
	fmt.Println()
	ui.PrintSection("Schema Summary")
	summary := []string{
		fmt.Sprintf("%d refined subject(s)", len(file.Subjects())),
		fmt.Sprintf("%d attribute record(s)", len(reg.Records())),
		fmt.Sprintf("%d spelling entries", reg.Len()),
	}
	ui.PrintList(summary)

	// List attributes with their spelling and argument counts
	if len(reg.Records()) > 0 {
		fmt.Println()
		ui.PrintSection("Attributes")
		for _, record := range reg.Records() {
			ui.PrintInfo("%s (%d spelling(s), %d argument(s))", record.Name, len(record.Spellings), len(record.Args))
		}
	}

	return nil
}
