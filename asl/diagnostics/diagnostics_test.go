package diagnostics

import (
	"bytes"
	"strings"
	"testing"
)

func TestDiagnosticsAccumulation(t *testing.T) {
	diags := NewDiagnostics()
	if diags.HasErrors() {
		t.Fatal("Expected a fresh collection to be empty")
	}
	if diags.ToResult() != nil {
		t.Fatal("Expected no result error for an empty collection")
	}

	diags.PushError(NewSchemaError("first", EmptySpan()))
	diags.PushError(NewSchemaError("second", EmptySpan()))
	diags.PushWarning(NewSchemaWarning("careful", EmptySpan()))

	if len(diags.Errors()) != 2 || len(diags.Warnings()) != 1 {
		t.Fatalf("Expected 2 errors and 1 warning, got %d and %d", len(diags.Errors()), len(diags.Warnings()))
	}
	if diags.ToResult() == nil {
		t.Error("Expected a result error when errors are present")
	}

	other := FromError(NewSchemaError("third", EmptySpan()))
	diags.Extend(other)
	if len(diags.Errors()) != 3 {
		t.Errorf("Expected 3 errors after extend, got %d", len(diags.Errors()))
	}
	if diags.Errors()[2].Message() != "third" {
		t.Errorf("Expected extend to preserve order, got %q", diags.Errors()[2].Message())
	}
}

func TestPrettyPrintIncludesOffendingLine(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	text := "attribute Packed {\n  spellings = [\"packed\"]\n}\n"
	start := strings.Index(text, "Packed")
	err := NewSchemaError("something is wrong here", NewSpan(start, start+len("Packed"), FileIDZero))

	var buf bytes.Buffer
	if printErr := err.PrettyPrint(&buf, "schema.attrs", text); printErr != nil {
		t.Fatalf("PrettyPrint failed: %v", printErr)
	}

	out := buf.String()
	if !strings.Contains(out, "schema.attrs:1") {
		t.Errorf("Expected file and line reference, got:\n%s", out)
	}
	if !strings.Contains(out, "attribute Packed {") {
		t.Errorf("Expected the offending source line, got:\n%s", out)
	}
	if !strings.Contains(out, "something is wrong here") {
		t.Errorf("Expected the message, got:\n%s", out)
	}
}

func TestPrettyPrintClampsOutOfRangeSpan(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	text := "attribute A {}"
	err := NewSchemaError("truncated input", NewSpan(5, 500, FileIDZero))

	var buf bytes.Buffer
	if printErr := err.PrettyPrint(&buf, "schema.attrs", text); printErr != nil {
		t.Fatalf("PrettyPrint failed: %v", printErr)
	}
	if buf.Len() == 0 {
		t.Error("Expected output for a clamped span")
	}
}

func TestSpanContainsAndOverlaps(t *testing.T) {
	span := NewSpan(10, 20, FileIDZero)

	if !span.Contains(10) || !span.Contains(20) {
		t.Error("Expected span boundaries to be included")
	}
	if span.Contains(21) {
		t.Error("Expected positions past the end to be outside")
	}
	if !span.Overlaps(NewSpan(15, 25, FileIDZero)) {
		t.Error("Expected overlapping spans to report overlap")
	}
	if span.Overlaps(NewSpan(21, 30, FileIDZero)) {
		t.Error("Expected disjoint spans not to overlap")
	}
}
