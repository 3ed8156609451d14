package asl

import (
	"strings"
	"testing"

	"github.com/attrlang/asl-go/asl/derive"
	"github.com/attrlang/asl-go/asl/diagnostics"
	"github.com/attrlang/asl-go/asl/schema"
)

const visibilitySchema = `
// Symbol visibility control.
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
`

type node struct {
	category schema.Category
	global   bool
}

func (n node) Category() schema.Category { return n.category }

func testPredicates() schema.PredicateTable {
	return schema.PredicateTable{
		"GlobalVar": func(n schema.Node) bool {
			candidate, ok := n.(node)
			return ok && candidate.global
		},
	}
}

func TestLoadSchemaBindsPredicates(t *testing.T) {
	loaded, diags := LoadSchema(visibilitySchema, testPredicates())
	if loaded == nil {
		t.Fatalf("Expected a schema, got errors:\n%s", diags.ToPrettyString("schema.attrs", visibilitySchema))
	}

	subject, ok := loaded.SubjectByName("GlobalVar")
	if !ok {
		t.Fatal("Expected the refined subject to be loaded")
	}
	if subject.Base != schema.CategoryVar {
		t.Errorf("Expected base category Var, got %s", subject.Base)
	}
	if !subject.Refined() {
		t.Error("Expected the predicate to be bound")
	}
	if subject.Satisfies(node{category: schema.CategoryVar}) {
		t.Error("Expected a non-global variable to be rejected by the predicate")
	}
	if !subject.Satisfies(node{category: schema.CategoryVar, global: true}) {
		t.Error("Expected a global variable to satisfy the refined subject")
	}
}

func TestLoadSchemaUnknownPredicate(t *testing.T) {
	_, diags := LoadSchema(visibilitySchema, nil)
	if !diags.HasErrors() {
		t.Fatal("Expected an unbound predicate error")
	}
}

func TestEndToEndDerivation(t *testing.T) {
	artifacts, diags := DeriveArtifacts(visibilitySchema, testPredicates())
	if artifacts == nil {
		t.Fatalf("Expected artifacts, got errors:\n%s", diags.ToPrettyString("schema.attrs", visibilitySchema))
	}

	entry, ok := artifacts.LookupParser("gnu", "visibility")
	if !ok {
		t.Fatal("Expected a dispatch entry for gnu::visibility")
	}

	parsed, errs := entry.Parse([]derive.RawArgument{{Raw: "internal"}}, diagnostics.EmptySpan())
	if len(errs) != 0 {
		t.Fatalf("Expected no usage errors, got: %v", errs)
	}
	if parsed.Arguments[0].Symbol != "Hidden" {
		t.Errorf("Expected 'internal' to resolve to 'Hidden', got %q", parsed.Arguments[0].Symbol)
	}

	identity := entry.Identity
	if err := identity.Subjects.Check(node{category: schema.CategoryFunction}, diagnostics.EmptySpan()); err != nil {
		t.Errorf("Expected a function to be an eligible subject: %v", err)
	}
	if err := identity.Subjects.Check(node{category: schema.CategoryVar}, diagnostics.EmptySpan()); err == nil {
		t.Error("Expected a local variable to be rejected")
	}
	if err := identity.Subjects.Check(node{category: schema.CategoryVar, global: true}, diagnostics.EmptySpan()); err != nil {
		t.Errorf("Expected a global variable to be accepted: %v", err)
	}

	if !identity.Propagation.ShouldPropagate(schema.CategoryFunction) {
		t.Error("Expected an inheritable attribute to propagate onto a redeclaration")
	}
}

func TestEndToEndDuplicateSpelling(t *testing.T) {
	input := `
attribute A {
    spellings = ["aligned"]
    namespaces = ["gnu"]
}
attribute B {
    spellings = ["aligned"]
    namespaces = ["gnu"]
}
`
	reg, diags := BuildRegistry(input, nil)
	if reg != nil {
		t.Fatal("Expected no registry on duplicate spellings")
	}
	message := diags.Errors()[0].Message()
	if !strings.Contains(message, "A") || !strings.Contains(message, "B") {
		t.Errorf("Expected both record names in the error, got: %s", message)
	}
}

func TestEndToEndSyntaxError(t *testing.T) {
	_, diags := ParseSchema("attribute {{{")
	if !diags.HasErrors() {
		t.Fatal("Expected a parser error")
	}
}

func TestEndToEndUnknownProperty(t *testing.T) {
	input := `
attribute Packed {
    spellings = ["packed"]
    namespaces = [""]
    frobnicate = true
}
`
	_, diags := LoadSchema(input, nil)
	if !diags.HasErrors() {
		t.Fatal("Expected an unknown property error")
	}
}

func TestEndToEndDistinctSpellings(t *testing.T) {
	input := `
attribute Interrupt {
    spellings = ["interrupt", "exception"]
    namespaces = [""]
    distinct = true

    arg number Unsigned {
        optional = true
    }
}
`
	artifacts, diags := DeriveArtifacts(input, nil)
	if artifacts == nil {
		t.Fatalf("Expected artifacts, got errors: %v", diags.Errors())
	}
	if len(artifacts.Identities()) != 2 {
		t.Fatalf("Expected one identity per spelling, got %d", len(artifacts.Identities()))
	}
	if len(artifacts.Classes()) != 2 {
		t.Errorf("Expected one class per identity, got %d", len(artifacts.Classes()))
	}
}
