package schema

import (
	"testing"

	"github.com/attrlang/asl-go/asl/diagnostics"
)

type testNode struct {
	category Category
}

func (n testNode) Category() Category { return n.category }

func TestBaseSubjectSatisfaction(t *testing.T) {
	subject := BaseSubject(CategoryFunction)

	if !subject.Satisfies(testNode{CategoryFunction}) {
		t.Error("Expected Function node to satisfy Function subject")
	}
	if subject.Satisfies(testNode{CategoryVar}) {
		t.Error("Expected Var node not to satisfy Function subject")
	}
	if subject.Satisfies(nil) {
		t.Error("Expected nil node not to satisfy any subject")
	}
}

func TestGeneralizedDeclSubject(t *testing.T) {
	subject := BaseSubject(CategoryDecl)

	declCategories := []Category{
		CategoryFunction, CategoryMethod, CategoryVar, CategoryParam,
		CategoryField, CategoryTypedef, CategoryRecord, CategoryEnum,
		CategoryEnumConstant, CategoryNamespace,
	}
	for _, c := range declCategories {
		if !subject.Satisfies(testNode{c}) {
			t.Errorf("Expected %s to satisfy the generalized Decl subject", c)
		}
	}

	stmtCategories := []Category{CategoryLabel, CategoryBlock, CategoryReturnStmt, CategoryStmt}
	for _, c := range stmtCategories {
		if subject.Satisfies(testNode{c}) {
			t.Errorf("Expected %s not to satisfy the generalized Decl subject", c)
		}
	}
}

func TestRefinedSubjectSatisfaction(t *testing.T) {
	virtual := map[Category]bool{CategoryMethod: true}
	subject := RefinedSubject(CategoryMethod, "VirtualMethod", "virtual methods", CapVirtuality,
		func(n Node) bool { return virtual[n.Category()] })

	if !subject.Refined() {
		t.Fatal("Expected subject to be refined")
	}
	if !subject.Satisfies(testNode{CategoryMethod}) {
		t.Error("Expected Method node to satisfy VirtualMethod subject")
	}
	if subject.Satisfies(testNode{CategoryFunction}) {
		t.Error("Expected Function node not to satisfy VirtualMethod subject (base mismatch)")
	}
}

func TestRefinedSubjectPredicateFilters(t *testing.T) {
	// Predicate rejects everything: base match alone must not suffice.
	subject := RefinedSubject(CategoryVar, "NeverVar", "no variables", 0,
		func(n Node) bool { return false })

	if subject.Satisfies(testNode{CategoryVar}) {
		t.Error("Expected predicate to reject a base-matching node")
	}
}

func TestCapabilityValidation(t *testing.T) {
	// Virtuality introspection is only available on methods. Requiring it
	// from a Var base is a schema-definition error.
	subject := RefinedSubject(CategoryVar, "VirtualVar", "", CapVirtuality,
		func(n Node) bool { return true })

	diags := diagnostics.NewDiagnostics()
	subject.Validate(&diags)
	if !diags.HasErrors() {
		t.Fatal("Expected a capability error")
	}

	ok := RefinedSubject(CategoryMethod, "VirtualMethod", "", CapVirtuality,
		func(n Node) bool { return true })
	diags = diagnostics.NewDiagnostics()
	ok.Validate(&diags)
	if diags.HasErrors() {
		t.Fatalf("Expected no errors, got: %v", diags.Errors())
	}
}

func TestCategoryNameRoundTrip(t *testing.T) {
	for _, name := range []string{"Function", "Var", "Param", "Field", "Decl", "Stmt", "ReturnStmt"} {
		c, ok := CategoryFromName(name)
		if !ok {
			t.Fatalf("Category %q not found", name)
		}
		if c.String() != name {
			t.Errorf("Round trip failed for %q: got %q", name, c.String())
		}
	}
	if _, ok := CategoryFromName("Bogus"); ok {
		t.Error("Expected lookup of unknown category to fail")
	}
}
