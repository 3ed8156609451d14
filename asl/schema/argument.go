package schema

import (
	"strconv"

	goversion "github.com/hashicorp/go-version"

	"github.com/attrlang/asl-go/asl/diagnostics"
)

// ArgumentKind is the tag of an argument's kind, drawn from a closed set.
type ArgumentKind uint8

const (
	// KindInvalid is the zero value.
	KindInvalid ArgumentKind = iota
	// KindBool is a boolean argument.
	KindBool
	// KindIdentifier is a bare identifier argument.
	KindIdentifier
	// KindInt is a signed integer argument.
	KindInt
	// KindUnsignedInt is an unsigned integer argument.
	KindUnsignedInt
	// KindString is a string literal argument.
	KindString
	// KindExpression is an arbitrary expression argument. Its value may
	// depend on template parameters and resolves late.
	KindExpression
	// KindTypeReference is a reference to a type.
	KindTypeReference
	// KindSourceLocation is a source-location argument.
	KindSourceLocation
	// KindFunctionReference is a reference to a function declaration.
	KindFunctionReference
	// KindVersionTuple is a version-triple argument such as "10.4.9".
	KindVersionTuple
	// KindVariadicUnsigned consumes all remaining arguments as unsigned
	// integers.
	KindVariadicUnsigned
	// KindVariadicExpression consumes all remaining arguments as
	// expressions.
	KindVariadicExpression
	// KindEnum accepts one of a finite set of surface spellings, each mapped
	// to a symbolic value.
	KindEnum
	// KindAlignment accepts either an integer or a type reference, possibly
	// unresolved until instantiation.
	KindAlignment
)

var argumentKindNames = map[ArgumentKind]string{
	KindBool:               "Bool",
	KindIdentifier:         "Identifier",
	KindInt:                "Int",
	KindUnsignedInt:        "Unsigned",
	KindString:             "String",
	KindExpression:         "Expr",
	KindTypeReference:      "Type",
	KindSourceLocation:     "SourceLoc",
	KindFunctionReference:  "Function",
	KindVersionTuple:       "Version",
	KindVariadicUnsigned:   "VariadicUnsigned",
	KindVariadicExpression: "VariadicExpr",
	KindEnum:               "Enum",
	KindAlignment:          "Alignment",
}

var argumentKindsByName = func() map[string]ArgumentKind {
	m := make(map[string]ArgumentKind, len(argumentKindNames))
	for k, n := range argumentKindNames {
		m[n] = k
	}
	return m
}()

// String returns the kind name.
func (k ArgumentKind) String() string {
	if n, ok := argumentKindNames[k]; ok {
		return n
	}
	return "Invalid"
}

// ArgumentKindFromName looks up an argument kind by its name.
func ArgumentKindFromName(name string) (ArgumentKind, bool) {
	k, ok := argumentKindsByName[name]
	return k, ok
}

// SupportsDefault reports whether the kind declares an optional default value.
func (k ArgumentKind) SupportsDefault() bool {
	switch k {
	case KindBool, KindInt, KindUnsignedInt, KindVersionTuple:
		return true
	}
	return false
}

// Variadic reports whether the kind consumes all remaining positional
// arguments from the point it appears.
func (k ArgumentKind) Variadic() bool {
	return k == KindVariadicUnsigned || k == KindVariadicExpression
}

// Deferred reports whether values of this kind may depend on template
// parameters not yet substituted and therefore require deferred resolution.
func (k ArgumentKind) Deferred() bool {
	switch k {
	case KindExpression, KindVariadicExpression, KindTypeReference, KindAlignment:
		return true
	}
	return false
}

// ExpressionTyped reports whether values of this kind carry expressions.
func (k ArgumentKind) ExpressionTyped() bool {
	return k == KindExpression || k == KindVariadicExpression
}

// ArgumentSpec describes one argument an attribute record declares. An
// ArgumentSpec has no existence independent of its owning record.
type ArgumentSpec struct {
	// Name is the argument's name, unique within the owning record.
	Name string
	// Kind is the argument's kind tag.
	Kind ArgumentKind
	// Optional marks the argument as omissible even without a default.
	Optional bool
	// Default is the raw literal default, for kinds that declare one.
	Default *string
	// Values are the accepted surface spellings of an enumerated argument.
	Values []string
	// Enums are the symbolic values the surface spellings map to, parallel
	// to Values. Duplicate symbolic values are legal.
	Enums []string
	// Span is the argument's declaration site, when loaded from a schema
	// file.
	Span diagnostics.Span
}

// Required reports whether an occurrence must supply the argument.
func (a *ArgumentSpec) Required() bool {
	return !a.Optional && a.Default == nil && !a.Kind.Variadic()
}

// ResolveEnum maps a surface spelling to its symbolic value by position in
// the parallel Values/Enums lists. The second result is false for an
// unrecognized spelling, which callers report as a usage-validation error.
func (a *ArgumentSpec) ResolveEnum(surface string) (string, bool) {
	for i, v := range a.Values {
		if v == surface {
			return a.Enums[i], true
		}
	}
	return "", false
}

// Validate checks the argument's static consistency within its owning record.
func (a *ArgumentSpec) Validate(recordName string, diags *diagnostics.Diagnostics) {
	if a.Kind == KindInvalid {
		diags.PushError(diagnostics.NewArgumentKindNotKnownError(a.Name, a.Span))
		return
	}

	if a.Kind == KindEnum {
		if len(a.Values) == 0 || len(a.Values) != len(a.Enums) {
			diags.PushError(diagnostics.NewEnumArityMismatchError(
				recordName, a.Name, len(a.Values), len(a.Enums), a.Span))
		}
		seen := make(map[string]bool, len(a.Values))
		for _, v := range a.Values {
			if seen[v] {
				diags.PushError(diagnostics.NewDuplicateEnumValueError(recordName, a.Name, v, a.Span))
			}
			seen[v] = true
		}
	} else if len(a.Values) > 0 || len(a.Enums) > 0 {
		diags.PushError(diagnostics.NewEnumListOnNonEnumError(recordName, a.Name, a.Kind.String(), a.Span))
	}

	if a.Default == nil {
		return
	}
	if !a.Kind.SupportsDefault() {
		diags.PushError(diagnostics.NewDefaultNotSupportedError(recordName, a.Name, a.Kind.String(), a.Span))
		return
	}
	if !a.Kind.representable(*a.Default) {
		diags.PushError(diagnostics.NewDefaultNotRepresentableError(
			recordName, a.Name, a.Kind.String(), *a.Default, a.Span))
	}
}

// representable reports whether the raw literal is a well-formed value of the
// kind.
func (k ArgumentKind) representable(raw string) bool {
	switch k {
	case KindBool:
		return raw == "true" || raw == "false"
	case KindInt:
		_, err := strconv.ParseInt(raw, 10, 64)
		return err == nil
	case KindUnsignedInt:
		_, err := strconv.ParseUint(raw, 10, 64)
		return err == nil
	case KindVersionTuple:
		_, err := goversion.NewVersion(raw)
		return err == nil
	}
	return false
}
