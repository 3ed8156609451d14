package registry

import (
	"strings"
	"testing"

	"github.com/attrlang/asl-go/asl/schema"
)

func record(name string, spellings, namespaces []string) *schema.Record {
	r := schema.NewRecord(name)
	r.Spellings = spellings
	r.Namespaces = namespaces
	return r
}

func TestBuildAndLookupRoundTrip(t *testing.T) {
	s := &schema.Schema{
		Records: []*schema.Record{
			record("Packed", []string{"packed"}, []string{"", "gnu"}),
			record("FallThrough", []string{"fallthrough"}, []string{"", "clang"}),
		},
	}

	reg, diags := Build(s)
	if reg == nil {
		t.Fatalf("Expected a registry, got errors: %v", diags.Errors())
	}

	// Every declared (namespace, spelling) pair must resolve to exactly its
	// owning record.
	for _, rec := range s.Records {
		for _, spelling := range rec.Spellings {
			for _, namespace := range rec.Namespaces {
				got, ok := reg.Lookup(namespace, spelling)
				if !ok {
					t.Errorf("(%q, %q) did not resolve", namespace, spelling)
					continue
				}
				if got != rec {
					t.Errorf("(%q, %q) resolved to %q, want %q", namespace, spelling, got.Name, rec.Name)
				}
			}
		}
	}

	if reg.Len() != 4 {
		t.Errorf("Expected 4 entries, got %d", reg.Len())
	}
}

func TestLookupAbsenceIsNotAnError(t *testing.T) {
	s := &schema.Schema{
		Records: []*schema.Record{record("Packed", []string{"packed"}, []string{""})},
	}
	reg, _ := Build(s)
	if reg == nil {
		t.Fatal("Expected a registry")
	}

	if _, ok := reg.Lookup("", "unknown"); ok {
		t.Error("Expected unknown spelling not to resolve")
	}
	// A spelling registered in one namespace is not visible in another.
	if _, ok := reg.Lookup("gnu", "packed"); ok {
		t.Error("Expected spelling to be invisible outside its namespaces")
	}
}

func TestDuplicateSpellingFailsNamingBothRecords(t *testing.T) {
	s := &schema.Schema{
		Records: []*schema.Record{
			record("Aligned", []string{"aligned"}, []string{"gnu"}),
			record("AlignValue", []string{"aligned"}, []string{"gnu"}),
		},
	}

	reg, diags := Build(s)
	if reg != nil {
		t.Fatal("Expected no registry on duplicate spellings")
	}
	if !diags.HasErrors() {
		t.Fatal("Expected a duplicate spelling error")
	}

	message := diags.Errors()[0].Message()
	if !strings.Contains(message, "Aligned") || !strings.Contains(message, "AlignValue") {
		t.Errorf("Expected both record names in the error, got: %s", message)
	}
}

func TestSameSpellingDifferentNamespacesIsLegal(t *testing.T) {
	s := &schema.Schema{
		Records: []*schema.Record{
			record("GnuAligned", []string{"aligned"}, []string{"gnu"}),
			record("ClangAligned", []string{"aligned"}, []string{"clang"}),
		},
	}

	reg, diags := Build(s)
	if reg == nil {
		t.Fatalf("Expected a registry, got errors: %v", diags.Errors())
	}
}

func TestEmptySpellingsUnreachableByLookup(t *testing.T) {
	implicit := record("Implicit", nil, []string{""})
	s := &schema.Schema{
		Records: []*schema.Record{implicit},
	}

	reg, _ := Build(s)
	if reg == nil {
		t.Fatal("Expected a registry")
	}
	if reg.Len() != 0 {
		t.Errorf("Expected no text entries for a synthesized-only record, got %d", reg.Len())
	}

	// The record is still reachable through the synthesis path.
	got, ok := reg.RecordByName("Implicit")
	if !ok || got != implicit {
		t.Error("Expected RecordByName to find the synthesized-only record")
	}
}

func TestBuildCollectsAllErrors(t *testing.T) {
	bad := record("Bad", []string{"bad"}, []string{""})
	bad.Args = []schema.ArgumentSpec{
		{Name: "x", Kind: schema.KindVariadicUnsigned},
		{Name: "y", Kind: schema.KindInt},
	}
	dupA := record("DupA", []string{"dup"}, []string{""})
	dupB := record("DupB", []string{"dup"}, []string{""})

	s := &schema.Schema{Records: []*schema.Record{bad, dupA, dupB}}
	reg, diags := Build(s)
	if reg != nil {
		t.Fatal("Expected no registry")
	}
	if len(diags.Errors()) < 2 {
		t.Errorf("Expected both the ordering and the duplicate error, got %d", len(diags.Errors()))
	}
}
