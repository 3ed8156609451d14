package parsing

import (
	"testing"

	"github.com/attrlang/asl-go/asl/parsing/ast"
)

func TestParseBasicAttribute(t *testing.T) {
	input := `
attribute Visibility {
  spellings  = ["visibility"]
  namespaces = [""]
  subjects   = [Function, Var, Field]

  arg kind Enum {
    values = ["default", "hidden", "internal", "protected"]
    enums  = [Default, Hidden, Hidden, Protected]
  }
}
`
	file, err := ParseSchemaString("test.attrs", input)
	if err != nil {
		t.Fatalf("Failed to parse schema: %v", err)
	}

	attrs := file.Attributes()
	if len(attrs) != 1 {
		t.Fatalf("Expected 1 attribute, got %d", len(attrs))
	}

	attr := attrs[0]
	if attr.GetName() != "Visibility" {
		t.Errorf("Expected attribute name 'Visibility', got '%s'", attr.GetName())
	}

	if len(attr.Properties()) != 3 {
		t.Errorf("Expected 3 properties, got %d", len(attr.Properties()))
	}

	args := attr.Args()
	if len(args) != 1 {
		t.Fatalf("Expected 1 arg, got %d", len(args))
	}
	if args[0].GetName() != "kind" {
		t.Errorf("Expected arg name 'kind', got '%s'", args[0].GetName())
	}
	if args[0].Kind.Name != "Enum" {
		t.Errorf("Expected arg kind 'Enum', got '%s'", args[0].Kind.Name)
	}
	if len(args[0].Properties) != 2 {
		t.Errorf("Expected 2 arg properties, got %d", len(args[0].Properties))
	}
}

func TestParseSubjectDecl(t *testing.T) {
	input := `
subject GlobalVar of Var {
  description = "global variables"
  requires    = [Linkage]
}
`
	file, err := ParseSchemaString("test.attrs", input)
	if err != nil {
		t.Fatalf("Failed to parse schema: %v", err)
	}

	subjects := file.Subjects()
	if len(subjects) != 1 {
		t.Fatalf("Expected 1 subject, got %d", len(subjects))
	}

	subject := subjects[0]
	if subject.GetName() != "GlobalVar" {
		t.Errorf("Expected subject name 'GlobalVar', got '%s'", subject.GetName())
	}
	if subject.Base == nil || subject.Base.Name != "Var" {
		t.Errorf("Expected base 'Var', got %v", subject.Base)
	}
}

func TestParsePreservesDeclarationOrder(t *testing.T) {
	input := `
subject GlobalVar of Var {
  description = "global variables"
}

attribute First {
  spellings  = ["first"]
  namespaces = [""]
}

attribute Second {
  spellings  = ["second"]
  namespaces = [""]
}
`
	file, err := ParseSchemaString("test.attrs", input)
	if err != nil {
		t.Fatalf("Failed to parse schema: %v", err)
	}

	if len(file.Tops) != 3 {
		t.Fatalf("Expected 3 top-level declarations, got %d", len(file.Tops))
	}

	attrs := file.Attributes()
	if len(attrs) != 2 {
		t.Fatalf("Expected 2 attributes, got %d", len(attrs))
	}
	if attrs[0].GetName() != "First" || attrs[1].GetName() != "Second" {
		t.Errorf("Declaration order not preserved: %s, %s", attrs[0].GetName(), attrs[1].GetName())
	}
}

func TestParseFlagsAndComments(t *testing.T) {
	input := `
// Thread-safety annotation: member expressions resolve after the
// enclosing class is complete.
attribute GuardedBy {
  spellings  = ["guarded_by"]
  namespaces = [""]
  subjects   = [Field, Var]
  late       = true
  template   = true
  inherit    = none

  arg guard Expr
}
`
	file, err := ParseSchemaString("test.attrs", input)
	if err != nil {
		t.Fatalf("Failed to parse schema: %v", err)
	}

	attr := file.Attributes()[0]
	late, ok := findConstant(t, attr, "late")
	if !ok || late != "true" {
		t.Errorf("Expected late = true, got %q", late)
	}
	inherit, ok := findConstant(t, attr, "inherit")
	if !ok || inherit != "none" {
		t.Errorf("Expected inherit = none, got %q", inherit)
	}

	args := attr.Args()
	if len(args) != 1 || args[0].Kind.Name != "Expr" {
		t.Fatalf("Expected one Expr arg, got %v", args)
	}
	if len(args[0].Properties) != 0 {
		t.Errorf("Expected no arg properties, got %d", len(args[0].Properties))
	}
}

func TestParseEmptyNamespaceString(t *testing.T) {
	input := `
attribute Packed {
  spellings  = ["packed"]
  namespaces = ["", "gnu"]
}
`
	file, err := ParseSchemaString("test.attrs", input)
	if err != nil {
		t.Fatalf("Failed to parse schema: %v", err)
	}

	attr := file.Attributes()[0]
	props := attr.Properties()
	for _, prop := range props {
		if prop.Name.Name != "namespaces" {
			continue
		}
		array, ok := prop.Value.AsArray()
		if !ok {
			t.Fatalf("namespaces is not an array")
		}
		if len(array.Elements) != 2 {
			t.Fatalf("Expected 2 namespaces, got %d", len(array.Elements))
		}
		first, ok := array.Elements[0].AsStringValue()
		if !ok || first.GetValue() != "" {
			t.Errorf("Expected empty first namespace, got %v", array.Elements[0])
		}
	}
}

func TestParseErrorOnGarbage(t *testing.T) {
	if _, err := ParseSchemaString("test.attrs", "attribute {{{"); err == nil {
		t.Fatal("Expected a parse error, got none")
	}
}

// findConstant returns the constant value of a named property.
func findConstant(t *testing.T, attr *ast.AttributeDecl, name string) (string, bool) {
	t.Helper()
	prop, ok := ast.FindProperty(attr.Properties(), name)
	if !ok {
		return "", false
	}
	constant, ok := prop.Value.AsConstantValue()
	if !ok {
		return "", false
	}
	return constant.Value, true
}
