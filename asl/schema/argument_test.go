package schema

import (
	"testing"

	"github.com/attrlang/asl-go/asl/diagnostics"
)

func TestEnumParallelListValidation(t *testing.T) {
	spec := ArgumentSpec{
		Name:   "kind",
		Kind:   KindEnum,
		Values: []string{"default", "hidden", "internal"},
		Enums:  []string{"Default", "Hidden"},
	}

	diags := diagnostics.NewDiagnostics()
	spec.Validate("Visibility", &diags)
	if !diags.HasErrors() {
		t.Fatal("Expected an arity mismatch error for unequal Values/Enums")
	}
}

func TestEnumDuplicateValueRejected(t *testing.T) {
	spec := ArgumentSpec{
		Name:   "kind",
		Kind:   KindEnum,
		Values: []string{"hidden", "hidden"},
		Enums:  []string{"Hidden", "Hidden"},
	}

	diags := diagnostics.NewDiagnostics()
	spec.Validate("Visibility", &diags)
	if !diags.HasErrors() {
		t.Fatal("Expected a duplicate value error")
	}
}

func TestEnumDuplicateSymbolicValueLegal(t *testing.T) {
	// Duplicate symbolic values are intentional: two surface spellings may
	// map to one internal value.
	spec := ArgumentSpec{
		Name:   "kind",
		Kind:   KindEnum,
		Values: []string{"default", "hidden", "internal", "protected"},
		Enums:  []string{"Default", "Hidden", "Hidden", "Protected"},
	}

	diags := diagnostics.NewDiagnostics()
	spec.Validate("Visibility", &diags)
	if diags.HasErrors() {
		t.Fatalf("Expected no errors, got: %v", diags.Errors())
	}

	symbol, ok := spec.ResolveEnum("internal")
	if !ok || symbol != "Hidden" {
		t.Errorf("Expected 'internal' to resolve to 'Hidden', got %q (ok=%v)", symbol, ok)
	}
	if _, ok := spec.ResolveEnum("public"); ok {
		t.Error("Expected 'public' not to resolve")
	}
}

func TestDefaultOnUnsupportedKind(t *testing.T) {
	def := "foo"
	spec := ArgumentSpec{Name: "target", Kind: KindString, Default: &def}

	diags := diagnostics.NewDiagnostics()
	spec.Validate("Alias", &diags)
	if !diags.HasErrors() {
		t.Fatal("Expected an error: String does not declare a default")
	}
}

func TestDefaultRepresentability(t *testing.T) {
	cases := []struct {
		kind  ArgumentKind
		raw   string
		valid bool
	}{
		{KindInt, "42", true},
		{KindInt, "-7", true},
		{KindInt, "x", false},
		{KindUnsignedInt, "8", true},
		{KindUnsignedInt, "-8", false},
		{KindBool, "true", true},
		{KindBool, "yes", false},
		{KindVersionTuple, "10.4.9", true},
		{KindVersionTuple, "not.a.version", false},
	}

	for _, tc := range cases {
		raw := tc.raw
		spec := ArgumentSpec{Name: "value", Kind: tc.kind, Default: &raw}
		diags := diagnostics.NewDiagnostics()
		spec.Validate("Test", &diags)
		if tc.valid && diags.HasErrors() {
			t.Errorf("%s default %q: expected valid, got %v", tc.kind, tc.raw, diags.Errors())
		}
		if !tc.valid && !diags.HasErrors() {
			t.Errorf("%s default %q: expected an error", tc.kind, tc.raw)
		}
	}
}

func TestKindClassification(t *testing.T) {
	if !KindVariadicUnsigned.Variadic() || !KindVariadicExpression.Variadic() {
		t.Error("Expected variadic kinds to report Variadic")
	}
	if KindInt.Variadic() {
		t.Error("Expected Int not to be variadic")
	}

	for _, k := range []ArgumentKind{KindExpression, KindVariadicExpression, KindTypeReference, KindAlignment} {
		if !k.Deferred() {
			t.Errorf("Expected %s to require deferred resolution", k)
		}
	}
	if KindString.Deferred() {
		t.Error("Expected String not to require deferred resolution")
	}
}

func TestArgumentKindNameRoundTrip(t *testing.T) {
	for _, name := range []string{"Bool", "Int", "Unsigned", "String", "Expr", "Type", "Version", "Enum", "Alignment", "VariadicUnsigned", "VariadicExpr"} {
		k, ok := ArgumentKindFromName(name)
		if !ok {
			t.Fatalf("Kind %q not found", name)
		}
		if k.String() != name {
			t.Errorf("Round trip failed for %q: got %q", name, k.String())
		}
	}
}
