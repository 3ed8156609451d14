package schema

import (
	"github.com/attrlang/asl-go/asl/diagnostics"
)

// Propagation is the redeclaration-propagation level of an attribute record.
// The three levels form a linear capability lattice: InheritedParam satisfies
// any check written against Inherited or None.
type Propagation uint8

const (
	// PropagationNone means a resolved attribute instance is never carried
	// onto later redeclarations.
	PropagationNone Propagation = iota
	// PropagationInherited means the resolved instance is propagated to
	// later redeclarations of the same entity.
	PropagationInherited
	// PropagationInheritedParam additionally propagates when the attribute
	// is written on a parameter.
	PropagationInheritedParam
)

var propagationNames = map[Propagation]string{
	PropagationNone:           "none",
	PropagationInherited:      "inheritable",
	PropagationInheritedParam: "inheritableParam",
}

// String returns the propagation level's name.
func (p Propagation) String() string {
	if n, ok := propagationNames[p]; ok {
		return n
	}
	return "none"
}

// PropagationFromName looks up a propagation level by its name.
func PropagationFromName(name string) (Propagation, bool) {
	for p, n := range propagationNames {
		if n == name {
			return p, true
		}
	}
	return PropagationNone, false
}

// AtLeast reports whether the level satisfies a check written against the
// other level. Capability is monotonic in the lattice order.
func (p Propagation) AtLeast(other Propagation) bool {
	return p >= other
}

// Record is one attribute record: spellings, subjects, arguments, and
// behavioral flags. Records are declared once, immutable, and consumed by the
// registry and the derivation engine; they are never instantiated themselves.
type Record struct {
	// Name is the record's unique name.
	Name string

	// Spellings are the surface syntax strings recognized as invoking the
	// attribute, in declaration order. Empty means the attribute has no
	// user-facing syntax and is compiler-synthesized only.
	Spellings []string

	// Namespaces are the scoping qualifiers under which the spellings are
	// recognized. The empty string denotes the unqualified, GNU-style
	// spelling domain. An empty list means the attribute is not permitted
	// in any textual form.
	Namespaces []string

	// Subjects are the categories the attribute may appertain to, in
	// declaration order. An explicit empty set means every category is
	// eligible.
	Subjects []Subject

	// Args are the record's argument specifications in declared order.
	Args []ArgumentSpec

	// Propagation is the record's redeclaration-propagation level.
	Propagation Propagation

	// LateParsed defers syntactic capture of the attribute's arguments
	// until a later compilation phase.
	LateParsed bool

	// TemplateDependent requires the resolved instance to be re-evaluated
	// at each template instantiation.
	TemplateDependent bool

	// Clone controls whether the resolved instance propagates when its
	// owning declaration is cloned. Defaults to true.
	Clone bool

	// ASTNode controls whether the record produces a structural node in the
	// AST. Defaults to true.
	ASTNode bool

	// SemaHandler controls whether the record has a registered semantic
	// handler. Defaults to true.
	SemaHandler bool

	// Ignored marks the record as recognized, syntactically parsed, and
	// discarded: it never reaches semantic validation or the AST.
	Ignored bool

	// DistinctSpellings makes each spelling an independently distinct
	// semantic identity instead of a synonym of one record.
	DistinctSpellings bool

	// Hook names an opaque, engine-specific extension point the surrounding
	// semantic-analysis collaborator may implement. The core only carries
	// the name; it never interprets the content.
	Hook string

	// Span is the record's declaration site, when loaded from a schema file.
	Span diagnostics.Span
}

// NewRecord creates a record with the defaulted flags set: Clone, ASTNode and
// SemaHandler all default to true.
func NewRecord(name string) *Record {
	return &Record{
		Name:        name,
		Clone:       true,
		ASTNode:     true,
		SemaHandler: true,
	}
}

// HasUserSyntax reports whether the record is reachable through a textual
// spelling at all.
func (r *Record) HasUserSyntax() bool {
	return len(r.Spellings) > 0 && len(r.Namespaces) > 0
}

// CanonicalSpelling returns the first-declared spelling, used as the display
// name in diagnostics, or the record name for synthesized-only records.
func (r *Record) CanonicalSpelling() string {
	if len(r.Spellings) > 0 {
		return r.Spellings[0]
	}
	return r.Name
}

// HasExpressionArgs reports whether any argument carries expressions.
func (r *Record) HasExpressionArgs() bool {
	for i := range r.Args {
		if r.Args[i].Kind.ExpressionTyped() {
			return true
		}
	}
	return false
}

// HasDeferredArgs reports whether any argument kind requires deferred
// resolution.
func (r *Record) HasDeferredArgs() bool {
	for i := range r.Args {
		if r.Args[i].Kind.Deferred() {
			return true
		}
	}
	return false
}

// Validate checks the record's internal consistency at schema-build time.
// All findings are accumulated; nothing is reported per use.
func (r *Record) Validate(diags *diagnostics.Diagnostics) {
	seenArgs := make(map[string]bool, len(r.Args))
	variadicName := ""
	for i := range r.Args {
		arg := &r.Args[i]
		if seenArgs[arg.Name] {
			diags.PushError(diagnostics.NewDuplicateArgumentNameError(r.Name, arg.Name, arg.Span))
		}
		seenArgs[arg.Name] = true

		if variadicName != "" {
			diags.PushError(diagnostics.NewArgumentAfterVariadicError(r.Name, arg.Name, variadicName, arg.Span))
		}
		if arg.Kind.Variadic() {
			variadicName = arg.Name
		}

		arg.Validate(r.Name, diags)
	}

	for _, s := range r.Subjects {
		s.Validate(diags)
	}

	// Late parsing defers syntactic capture, template dependence defers
	// semantic evaluation. Neither is inferred from the other, but a record
	// with expression arguments setting only one is suspicious.
	if r.HasExpressionArgs() && r.LateParsed != r.TemplateDependent {
		if r.LateParsed {
			diags.PushWarning(diagnostics.NewLateTemplatePairingWarning(r.Name, "late", "template", r.Span))
		} else {
			diags.PushWarning(diagnostics.NewLateTemplatePairingWarning(r.Name, "template", "late", r.Span))
		}
	}

	if len(r.Spellings) == 0 && !r.SemaHandler {
		diags.PushWarning(diagnostics.NewSyntheticOnlyWarning(r.Name, r.Span))
	}
}
