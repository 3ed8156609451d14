// Package asl provides the main API for working with the Attribute Schema
// Language: parsing schema files, building the spelling registry, and
// deriving the artifacts a parser and a semantic checker consume.
package asl

import (
	"strings"

	"github.com/attrlang/asl-go/asl/core"
	"github.com/attrlang/asl-go/asl/derive"
	"github.com/attrlang/asl-go/asl/diagnostics"
	"github.com/attrlang/asl-go/asl/parsing"
	"github.com/attrlang/asl-go/asl/parsing/ast"
	"github.com/attrlang/asl-go/asl/registry"
	"github.com/attrlang/asl-go/asl/schema"
)

// Re-export key types for convenience
type (
	SourceFile     = core.SourceFile
	Diagnostics    = diagnostics.Diagnostics
	SchemaFile     = ast.SchemaFile
	Schema         = schema.Schema
	Record         = schema.Record
	Subject        = schema.Subject
	ArgumentSpec   = schema.ArgumentSpec
	PredicateTable = schema.PredicateTable
	Registry       = registry.Registry
	Artifacts      = derive.Artifacts
)

// ParseSchema parses an ASL schema string and returns the AST and diagnostics.
func ParseSchema(input string) (*ast.SchemaFile, diagnostics.Diagnostics) {
	file, err := parsing.ParseSchema("schema.attrs", strings.NewReader(input))
	var diags diagnostics.Diagnostics
	if err != nil {
		diags.PushError(diagnostics.NewParserError(err.Error(), diagnostics.EmptySpan()))
	}
	return file, diags
}

// ParseSchemaFromFile parses an ASL schema from a source file.
func ParseSchemaFromFile(file core.SourceFile) (*ast.SchemaFile, diagnostics.Diagnostics) {
	parsed, err := parsing.ParseSchema(file.Path, strings.NewReader(file.Data))
	var diags diagnostics.Diagnostics
	if err != nil {
		diags.PushError(diagnostics.NewParserError(err.Error(), diagnostics.EmptySpan()))
	}
	return parsed, diags
}

// LoadSchema parses a schema string and lowers it into the logical schema
// model, binding refined-subject predicates from the given table.
func LoadSchema(input string, predicates schema.PredicateTable) (*schema.Schema, diagnostics.Diagnostics) {
	file, diags := ParseSchema(input)
	if diags.HasErrors() {
		return nil, diags
	}
	loaded, loadDiags := schema.Load(file, predicates)
	diags.Extend(loadDiags)
	if diags.HasErrors() {
		return nil, diags
	}
	return loaded, diags
}

// BuildRegistry parses, lowers, validates, and builds the registry from a
// schema string. All schema-definition errors are accumulated; if any occur,
// no registry is produced.
func BuildRegistry(input string, predicates schema.PredicateTable) (*registry.Registry, diagnostics.Diagnostics) {
	loaded, diags := LoadSchema(input, predicates)
	if diags.HasErrors() {
		return nil, diags
	}
	reg, buildDiags := registry.Build(loaded)
	diags.Extend(buildDiags)
	if reg == nil {
		return nil, diags
	}
	return reg, diags
}

// DeriveArtifacts builds the registry and derives its artifacts in one step.
func DeriveArtifacts(input string, predicates schema.PredicateTable) (*derive.Artifacts, diagnostics.Diagnostics) {
	reg, diags := BuildRegistry(input, predicates)
	if reg == nil {
		return nil, diags
	}
	return derive.Derive(reg), diags
}

// NewSourceFile creates a new source file.
func NewSourceFile(path, data string) core.SourceFile {
	return core.NewSourceFile(path, data)
}
