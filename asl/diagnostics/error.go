package diagnostics

import (
	"fmt"
	"io"
	"strings"
)

// SchemaError represents a schema-definition or usage-validation error.
//
// Schema-definition errors are produced while building a registry from a
// collection of attribute records and are fatal to the build. Usage-validation
// errors are produced by the derived per-attribute routines against a single
// attribute occurrence and are recoverable diagnostics for the caller.
type SchemaError struct {
	span    Span
	message string
}

// NewSchemaError creates a new SchemaError with the given message and span.
func NewSchemaError(message string, span Span) SchemaError {
	return SchemaError{
		message: message,
		span:    span,
	}
}

// NewParserError creates a parser error with the unexpected input.
func NewParserError(message string, span Span) SchemaError {
	return NewSchemaError(message, span)
}

// NewRecordValidationError creates an error for an invalid attribute record.
func NewRecordValidationError(message, recordName string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Error validating attribute \"%s\": %s", recordName, message), span)
}

// NewDuplicateSpellingError creates an error for two records claiming the same
// spelling within one namespace. Both conflicting record names are reported.
func NewDuplicateSpellingError(namespace, spelling, firstRecord, secondRecord string, span Span) SchemaError {
	where := "the unqualified spelling domain"
	if namespace != "" {
		where = fmt.Sprintf("namespace \"%s\"", namespace)
	}
	return NewSchemaError(fmt.Sprintf("Spelling \"%s\" in %s is claimed by both \"%s\" and \"%s\".", spelling, where, firstRecord, secondRecord), span)
}

// NewDuplicateArgumentNameError creates an error for a repeated argument name
// inside one attribute record.
func NewDuplicateArgumentNameError(recordName, argName string, span Span) SchemaError {
	return NewRecordValidationError(fmt.Sprintf("argument \"%s\" is declared more than once", argName), recordName, span)
}

// NewArgumentAfterVariadicError creates an error for a fixed-arity argument
// declared after a variadic one.
func NewArgumentAfterVariadicError(recordName, argName, variadicName string, span Span) SchemaError {
	return NewRecordValidationError(fmt.Sprintf("argument \"%s\" follows the variadic argument \"%s\"; variadic arguments must come last", argName, variadicName), recordName, span)
}

// NewEnumArityMismatchError creates an error for enumerated arguments whose
// surface values and symbolic values differ in length.
func NewEnumArityMismatchError(recordName, argName string, values, enums int, span Span) SchemaError {
	return NewRecordValidationError(fmt.Sprintf("enumerated argument \"%s\" declares %d values but %d enums; the lists must be parallel", argName, values, enums), recordName, span)
}

// NewDuplicateEnumValueError creates an error for a repeated surface spelling
// in an enumerated argument's value list.
func NewDuplicateEnumValueError(recordName, argName, value string, span Span) SchemaError {
	return NewRecordValidationError(fmt.Sprintf("enumerated argument \"%s\" lists the value \"%s\" more than once", argName, value), recordName, span)
}

// NewEnumListOnNonEnumError creates an error for values/enums lists declared
// on a non-enumerated argument kind.
func NewEnumListOnNonEnumError(recordName, argName, kind string, span Span) SchemaError {
	return NewRecordValidationError(fmt.Sprintf("argument \"%s\" of kind %s must not declare values or enums", argName, kind), recordName, span)
}

// NewDefaultNotSupportedError creates an error for a default value declared on
// an argument kind that does not support one.
func NewDefaultNotSupportedError(recordName, argName, kind string, span Span) SchemaError {
	return NewRecordValidationError(fmt.Sprintf("argument \"%s\" of kind %s does not support a default value", argName, kind), recordName, span)
}

// NewDefaultNotRepresentableError creates an error for a default value that is
// not representable by its argument kind.
func NewDefaultNotRepresentableError(recordName, argName, kind, raw string, span Span) SchemaError {
	return NewRecordValidationError(fmt.Sprintf("default \"%s\" of argument \"%s\" is not representable as %s", raw, argName, kind), recordName, span)
}

// NewPredicateCapabilityError creates an error for a refined subject whose
// predicate requires a capability its base category cannot provide.
func NewPredicateCapabilityError(subjectName, baseName, capability string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Subject \"%s\" requires the %s capability, which base category %s does not provide.", subjectName, capability, baseName), span)
}

// NewSubjectBaseMissingError creates an error for a refined subject declared
// without a base category.
func NewSubjectBaseMissingError(subjectName string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Subject \"%s\" must name a base category with \"of\"; refined subjects only filter existing categories.", subjectName), span)
}

// NewSubjectNotKnownError creates an error for an unknown subject reference.
func NewSubjectNotKnownError(subjectName string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Subject not known: \"%s\".", subjectName), span)
}

// NewPredicateNotKnownError creates an error for a refined subject whose named
// predicate has no registered implementation.
func NewPredicateNotKnownError(subjectName, predicateName string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Subject \"%s\" references the predicate \"%s\", which is not registered.", subjectName, predicateName), span)
}

// NewArgumentKindNotKnownError creates an error for an unknown argument kind.
func NewArgumentKindNotKnownError(kindName string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Argument kind not known: \"%s\".", kindName), span)
}

// NewPropagationNotKnownError creates an error for an unknown propagation level.
func NewPropagationNotKnownError(value string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Propagation level not known: \"%s\". Expected one of: none, inheritable, inheritableParam.", value), span)
}

// NewPropertyNotKnownError creates an error for an unknown property in a block.
func NewPropertyNotKnownError(propertyName string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Property not known: \"%s\".", propertyName), span)
}

// NewPropertyTypeError creates an error for a property assigned a value of the
// wrong type.
func NewPropertyTypeError(propertyName, expected, got string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Property \"%s\" expects %s, but received %s.", propertyName, expected, got), span)
}

// NewDuplicateTopError creates an error for duplicate top-level declarations.
func NewDuplicateTopError(name, topType string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("The %s \"%s\" cannot be defined because a declaration with that name already exists.", topType, name), span)
}

// NewAttributeNotKnownError creates a usage error for an unrecognized attribute
// spelling.
func NewAttributeNotKnownError(namespace, spelling string, span Span) SchemaError {
	if namespace != "" {
		return NewSchemaError(fmt.Sprintf("Attribute not known: \"[[%s::%s]]\".", namespace, spelling), span)
	}
	return NewSchemaError(fmt.Sprintf("Attribute not known: \"%s\".", spelling), span)
}

// NewUnknownEnumValueError creates a usage error for an unrecognized surface
// spelling of an enumerated argument, listing the accepted values.
func NewUnknownEnumValueError(attrName, argName, got string, accepted []string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("\"%s\" is not a valid value for argument \"%s\" of attribute \"%s\". Expected one of: %s.", got, argName, attrName, strings.Join(accepted, ", ")), span)
}

// NewArgumentCountMismatchError creates a usage error for a wrong number of
// arguments at an attribute occurrence.
func NewArgumentCountMismatchError(attrName string, requiredCount, givenCount int, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Attribute \"%s\" takes %d arguments, but received %d.", attrName, requiredCount, givenCount), span)
}

// NewArgumentValueError creates a usage error for an argument value that does
// not match its declared kind.
func NewArgumentValueError(attrName, argName, expected, raw string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Expected %s for argument \"%s\" of attribute \"%s\", but found \"%s\".", expected, argName, attrName, raw), span)
}

// NewSubjectMismatchError creates a usage error for an attribute attached to a
// syntactic category none of its declared subjects accept.
func NewSubjectMismatchError(attrName, category, expected string, span Span) SchemaError {
	return NewSchemaError(fmt.Sprintf("Attribute \"%s\" cannot be applied to %s. Valid subjects: %s.", attrName, category, expected), span)
}

// Span returns the span of the error.
func (e SchemaError) Span() Span {
	return e.span
}

// Message returns the error message.
func (e SchemaError) Message() string {
	return e.message
}

// Error implements the error interface.
func (e SchemaError) Error() string {
	return e.message
}

// PrettyPrint writes a pretty-printed representation of the error to the writer.
func (e SchemaError) PrettyPrint(w io.Writer, fileName, text string) error {
	return PrettyPrint(w, fileName, text, e.span, e.message, ErrorColorer{})
}
