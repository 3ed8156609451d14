package diagnostics

import (
	"fmt"
	"io"
)

// SchemaWarning represents a non-fatal warning emitted by schema validation.
type SchemaWarning struct {
	message string
	span    Span
}

// NewSchemaWarning creates a new SchemaWarning with the given message and span.
func NewSchemaWarning(message string, span Span) SchemaWarning {
	return SchemaWarning{
		message: message,
		span:    span,
	}
}

// NewLateTemplatePairingWarning creates a warning for a record carrying
// expression-typed arguments that sets only one of the late-parsed and
// template-dependent flags. Late parsing defers syntactic capture and
// template dependence defers semantic evaluation; expression arguments
// normally need both.
func NewLateTemplatePairingWarning(recordName, setFlag, missingFlag string, span Span) SchemaWarning {
	message := fmt.Sprintf("Attribute \"%s\" has expression-typed arguments and sets %s but not %s. Records deferring expression arguments usually set both.", recordName, setFlag, missingFlag)
	return NewSchemaWarning(message, span)
}

// NewSyntheticOnlyWarning creates a warning for a record that has neither a
// user-facing spelling nor a semantic handler.
func NewSyntheticOnlyWarning(recordName string, span Span) SchemaWarning {
	message := fmt.Sprintf("Attribute \"%s\" has no spellings and no semantic handler; it is only reachable through compiler-internal synthesis.", recordName)
	return NewSchemaWarning(message, span)
}

// NewRecordValidationWarning creates a warning for a suspicious but legal
// attribute record.
func NewRecordValidationWarning(message, recordName string, span Span) SchemaWarning {
	msg := fmt.Sprintf("Warning validating attribute \"%s\": %s", recordName, message)
	return NewSchemaWarning(msg, span)
}

// Message returns the warning message.
func (w SchemaWarning) Message() string {
	return w.message
}

// Span returns the span of the warning.
func (w SchemaWarning) Span() Span {
	return w.span
}

// PrettyPrint writes a pretty-printed representation of the warning to the writer.
func (w SchemaWarning) PrettyPrint(writer io.Writer, fileName, text string) error {
	return PrettyPrint(writer, fileName, text, w.span, w.message, WarningColorer{})
}
