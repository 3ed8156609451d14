package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/attrlang/asl-go/asl"
	"github.com/attrlang/asl-go/asl/parsing/ast"
	"github.com/attrlang/asl-go/asl/schema"
)

// getSchemaPath returns the schema path using consistent logic:
// 1. Use explicit flag value if set
// 2. Use first argument if provided
// 3. Default to "schema.attrs"
func getSchemaPath(flagValue string, args []string) string {
	if flagValue != "" && flagValue != "schema.attrs" {
		return flagValue
	}
	if len(args) > 0 {
		return args[0]
	}
	return "schema.attrs"
}

// findSchemaFile attempts to find a schema file in common locations
func findSchemaFile() string {
	commonPaths := []string{
		"schema.attrs",
		"attrs/schema.attrs",
		"./schema.attrs",
	}

	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, _ := filepath.Abs(path)
			return absPath
		}
	}
	return ""
}

// readSchema reads the schema file, with a friendly error when it is missing.
func readSchema(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("schema file not found: %s", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read schema file: %w", err)
	}
	return string(content), nil
}

// stubPredicates builds a predicate table binding every refined subject the
// schema declares to an always-true predicate. The real predicates live in
// the host compiler; for offline validation only the names and capability
// requirements matter.
func stubPredicates(file *ast.SchemaFile) schema.PredicateTable {
	table := schema.PredicateTable{}
	for _, decl := range file.Subjects() {
		name := decl.GetName()
		if prop, ok := ast.FindProperty(decl.Properties, "predicate"); ok {
			if s, ok := prop.Value.AsStringValue(); ok {
				name = s.GetValue()
			}
		}
		table[name] = func(schema.Node) bool { return true }
	}
	return table
}

// loadArtifacts runs the full pipeline on a schema file: parse, lower,
// validate, build the registry, and derive. Schema-definition errors are
// pretty-printed to stderr.
func loadArtifacts(path string) (*asl.Artifacts, string, error) {
	content, err := readSchema(path)
	if err != nil {
		return nil, "", err
	}

	file, diags := asl.ParseSchema(content)
	if diags.HasErrors() {
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(path, content))
		return nil, content, fmt.Errorf("schema has parsing errors")
	}

	artifacts, diags := asl.DeriveArtifacts(content, stubPredicates(file))
	if diags.HasErrors() {
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(path, content))
		return nil, content, fmt.Errorf("schema has definition errors")
	}
	if len(diags.Warnings()) > 0 {
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.WarningsToPrettyString(path, content))
	}

	return artifacts, content, nil
}
