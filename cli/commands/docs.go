package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/attrlang/asl-go/asl"
	"github.com/attrlang/asl-go/asl/schema"
	"github.com/attrlang/asl-go/cli/internal/config"
	"github.com/attrlang/asl-go/cli/internal/ui"
)

var docsCmd = &cobra.Command{
	Use:   "docs [schema-path]",
	Short: "Render attribute documentation from a schema",
	Long: `Render human-readable documentation for every attribute in a schema.

The documentation lists each attribute's spellings, eligible subjects,
arguments and propagation behavior. By default it is rendered to the
terminal; use --output to write plain markdown to a file instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDocs,
}

var (
	docsSchemaPath string
	docsOutput     string
)

func init() {
	docsCmd.Flags().StringVarP(&docsSchemaPath, "schema", "s", "schema.attrs", "Path to schema file")
	docsCmd.Flags().StringVarP(&docsOutput, "output", "o", "", "Write markdown to a file instead of the terminal")

	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, args []string) error {
	schemaPath := getSchemaPath(docsSchemaPath, args)

	output := docsOutput
	if output == "" {
		if cfg, err := config.LoadConfig(); err == nil {
			output = cfg.DocsOutput
		}
	}

	content, err := readSchema(schemaPath)
	if err != nil {
		return err
	}

	file, diags := asl.ParseSchema(content)
	if diags.HasErrors() {
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(schemaPath, content))
		return fmt.Errorf("schema has parsing errors")
	}

	loaded, diags := asl.LoadSchema(content, stubPredicates(file))
	if diags.HasErrors() {
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(schemaPath, content))
		return fmt.Errorf("schema has definition errors")
	}

	markdown := renderDocs(loaded)

	if output != "" {
		if err := os.WriteFile(output, []byte(markdown), 0644); err != nil {
			return fmt.Errorf("failed to write documentation: %w", err)
		}
		ui.PrintSuccess("Wrote documentation to %s", output)
		return nil
	}

	return ui.PrintMarkdown(markdown)
}

// renderDocs builds the markdown documentation for a loaded schema.
func renderDocs(s *asl.Schema) string {
	var b strings.Builder

	b.WriteString("# Attribute Reference\n\n")

	if len(s.Subjects) > 0 {
		b.WriteString("## Refined Subjects\n\n")
		for _, subject := range s.Subjects {
			b.WriteString(fmt.Sprintf("- **%s** (base `%s`)", subject.Name, subject.Base))
			if subject.Description != "" {
				b.WriteString(": " + subject.Description)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	for _, record := range s.Records {
		b.WriteString(fmt.Sprintf("## %s\n\n", record.Name))

		if len(record.Spellings) == 0 {
			b.WriteString("Compiler-synthesized only; no surface spelling.\n\n")
		} else {
			b.WriteString("Spellings: ")
			spellings := make([]string, 0, len(record.Spellings)*len(record.Namespaces))
			for _, spelling := range record.Spellings {
				for _, namespace := range record.Namespaces {
					if namespace == "" {
						spellings = append(spellings, fmt.Sprintf("`%s`", spelling))
					} else {
						spellings = append(spellings, fmt.Sprintf("`%s::%s`", namespace, spelling))
					}
				}
			}
			b.WriteString(strings.Join(spellings, ", "))
			b.WriteString("\n\n")
		}

		if len(record.Subjects) > 0 {
			names := make([]string, 0, len(record.Subjects))
			for _, subject := range record.Subjects {
				names = append(names, subject.DisplayName())
			}
			b.WriteString("Applies to: " + strings.Join(names, ", ") + "\n\n")
		} else {
			b.WriteString("Applies to: any declaration or statement\n\n")
		}

		if len(record.Args) > 0 {
			b.WriteString("| Argument | Kind | Optional | Default |\n")
			b.WriteString("|----------|------|----------|---------|\n")
			for _, arg := range record.Args {
				defaultValue := ""
				if arg.Default != nil {
					defaultValue = "`" + *arg.Default + "`"
				}
				b.WriteString(fmt.Sprintf("| %s | %s | %v | %s |\n",
					arg.Name, arg.Kind, arg.Optional, defaultValue))
				if arg.Kind == schema.KindEnum && len(arg.Values) > 0 {
					b.WriteString(fmt.Sprintf("| | values: %s | | |\n", strings.Join(arg.Values, ", ")))
				}
			}
			b.WriteString("\n")
		}

		notes := recordNotes(record)
		if len(notes) > 0 {
			for _, note := range notes {
				b.WriteString("- " + note + "\n")
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// recordNotes collects the behavioral notes worth documenting per record.
func recordNotes(record *asl.Record) []string {
	var notes []string
	if record.Propagation != schema.PropagationNone {
		notes = append(notes, fmt.Sprintf("Propagates to redeclarations (level `%s`).", record.Propagation))
	}
	if record.LateParsed {
		notes = append(notes, "Arguments are captured late, after the enclosing scope is complete.")
	}
	if record.TemplateDependent {
		notes = append(notes, "Re-evaluated at each template instantiation.")
	}
	if record.Ignored {
		notes = append(notes, "Recognized and discarded without semantic effect.")
	}
	if record.DistinctSpellings {
		notes = append(notes, "Each spelling is a distinct attribute identity.")
	}
	return notes
}
