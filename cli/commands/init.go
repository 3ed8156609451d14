package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/attrlang/asl-go/cli/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Initialize a new attribute schema project",
	Long: `Initialize a new attribute schema project.

Creates a starter schema.attrs with a few example attributes, plus a
.gitignore. Prompts for the project directory when not given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var initYes bool

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Skip prompts and accept defaults")

	rootCmd.AddCommand(initCmd)
}

const starterSchema = `// Attribute schema for the toolchain. Run "asl validate" after editing.

subject GlobalVar of Var {
    description = "global variables"
    requires = [Linkage]
}

attribute Visibility {
    spellings = ["visibility"]
    namespaces = ["", "gnu"]
    subjects = [Function, GlobalVar]
    inherit = inheritable

    arg kind Enum {
        values = ["default", "hidden", "internal", "protected"]
        enums = [Default, Hidden, Hidden, Protected]
    }
}

attribute WarnUnusedResult {
    spellings = ["warn_unused_result", "nodiscard"]
    namespaces = [""]
    subjects = [Function, Method]
}

attribute Deprecated {
    spellings = ["deprecated"]
    namespaces = ["", "gnu"]
    inherit = inheritable

    arg message String {
        optional = true
    }
}
`

const starterGitignore = `# Generated documentation
docs/attributes.md

# Environment variables
.env
.env.local

# IDE
.idea/
.vscode/
*.swp

# OS
.DS_Store
`

func runInit(cmd *cobra.Command, args []string) error {
	ui.PrintHeader("ASL", "Initialize Project")

	projectDir := "."
	if len(args) > 0 {
		projectDir = args[0]
	} else if !initYes {
		prompt := &survey.Input{
			Message: "Project directory:",
			Default: ".",
		}
		if err := survey.AskOne(prompt, &projectDir); err != nil {
			return err
		}
	}

	if projectDir != "." {
		if err := os.MkdirAll(projectDir, 0755); err != nil {
			return fmt.Errorf("failed to create project directory: %w", err)
		}
		ui.PrintInfo("Created project directory: %s", projectDir)
	}

	schemaPath := filepath.Join(projectDir, "schema.attrs")
	if _, err := os.Stat(schemaPath); err == nil {
		overwrite := false
		if !initYes {
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("%s already exists. Overwrite?", schemaPath),
				Default: false,
			}
			if err := survey.AskOne(prompt, &overwrite); err != nil {
				return err
			}
		}
		if !overwrite {
			ui.PrintWarning("Keeping existing schema: %s", schemaPath)
		} else if err := os.WriteFile(schemaPath, []byte(starterSchema), 0644); err != nil {
			return fmt.Errorf("failed to write schema file: %w", err)
		} else {
			ui.PrintSuccess("Rewrote schema file: %s", schemaPath)
		}
	} else {
		if err := os.WriteFile(schemaPath, []byte(starterSchema), 0644); err != nil {
			return fmt.Errorf("failed to write schema file: %w", err)
		}
		ui.PrintSuccess("Created schema file: %s", schemaPath)
	}

	gitignorePath := filepath.Join(projectDir, ".gitignore")
	if _, err := os.Stat(gitignorePath); err != nil {
		if err := os.WriteFile(gitignorePath, []byte(starterGitignore), 0644); err != nil {
			ui.PrintWarning("Failed to create .gitignore: %v", err)
		} else {
			ui.PrintSuccess("Created .gitignore file")
		}
	}

	fmt.Println()
	ui.PrintBox("Next steps", `1. Edit schema.attrs to declare your attributes
2. Run: asl validate
3. Run: asl derive
4. Run: asl docs --output docs/attributes.md`)

	return nil
}
