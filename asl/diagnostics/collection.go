package diagnostics

import (
	"bytes"
	"fmt"
)

// Diagnostics represents a list of validation or parser errors and warnings.
// This is used to accumulate multiple errors and warnings during validation.
// It is used to not error out early and instead show multiple errors at once.
type Diagnostics struct {
	errors   []SchemaError
	warnings []SchemaWarning
}

// NewDiagnostics creates a new empty Diagnostics collection.
func NewDiagnostics() Diagnostics {
	return Diagnostics{
		errors:   make([]SchemaError, 0),
		warnings: make([]SchemaWarning, 0),
	}
}

// Warnings returns all warnings in the collection.
func (d *Diagnostics) Warnings() []SchemaWarning {
	return d.warnings
}

// Errors returns all errors in the collection.
func (d *Diagnostics) Errors() []SchemaError {
	return d.errors
}

// PushError adds an error to the collection.
func (d *Diagnostics) PushError(err SchemaError) {
	d.errors = append(d.errors, err)
}

// PushWarning adds a warning to the collection.
func (d *Diagnostics) PushWarning(warning SchemaWarning) {
	d.warnings = append(d.warnings, warning)
}

// Extend appends all errors and warnings from another collection, preserving
// their order.
func (d *Diagnostics) Extend(other Diagnostics) {
	d.errors = append(d.errors, other.errors...)
	d.warnings = append(d.warnings, other.warnings...)
}

// HasErrors returns true if there is at least one error in this collection.
func (d *Diagnostics) HasErrors() bool {
	return len(d.errors) > 0
}

// ToResult returns an error if there are errors, otherwise returns nil.
func (d *Diagnostics) ToResult() error {
	if d.HasErrors() {
		return fmt.Errorf("schema validation failed with %d errors", len(d.errors))
	}
	return nil
}

// ToPrettyString formats all errors as a pretty-printed string.
func (d *Diagnostics) ToPrettyString(fileName, schemaString string) string {
	var buf bytes.Buffer
	for _, err := range d.errors {
		_ = err.PrettyPrint(&buf, fileName, schemaString)
	}
	return buf.String()
}

// WarningsToPrettyString formats all warnings as a pretty-printed string.
func (d *Diagnostics) WarningsToPrettyString(fileName, schemaString string) string {
	var buf bytes.Buffer
	for _, warn := range d.warnings {
		_ = warn.PrettyPrint(&buf, fileName, schemaString)
	}
	return buf.String()
}

// FromError creates a Diagnostics from a single error.
func FromError(err SchemaError) Diagnostics {
	d := NewDiagnostics()
	d.PushError(err)
	return d
}

// FromWarning creates a Diagnostics from a single warning.
func FromWarning(warning SchemaWarning) Diagnostics {
	d := NewDiagnostics()
	d.PushWarning(warning)
	return d
}
