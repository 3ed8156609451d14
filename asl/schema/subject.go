// Package schema defines the logical model of an attribute schema: the
// subject model, the argument type system, and attribute records.
package schema

import (
	"strings"

	"github.com/attrlang/asl-go/asl/diagnostics"
)

// Category is the tag of a base syntactic category an attribute can attach to.
// The set is closed; refined subjects only filter these categories, they never
// introduce new ones.
type Category uint8

const (
	// CategoryInvalid is the zero value and matches nothing.
	CategoryInvalid Category = iota
	// CategoryDecl is the generalized category matching any declaration.
	CategoryDecl
	// CategoryStmt is the generalized category matching any statement.
	CategoryStmt
	CategoryFunction
	CategoryMethod
	CategoryVar
	CategoryParam
	CategoryField
	CategoryTypedef
	CategoryRecord
	CategoryEnum
	CategoryEnumConstant
	CategoryNamespace
	CategoryLabel
	CategoryBlock
	CategoryReturnStmt
)

var categoryNames = map[Category]string{
	CategoryDecl:         "Decl",
	CategoryStmt:         "Stmt",
	CategoryFunction:     "Function",
	CategoryMethod:       "Method",
	CategoryVar:          "Var",
	CategoryParam:        "Param",
	CategoryField:        "Field",
	CategoryTypedef:      "Typedef",
	CategoryRecord:       "Record",
	CategoryEnum:         "Enum",
	CategoryEnumConstant: "EnumConstant",
	CategoryNamespace:    "Namespace",
	CategoryLabel:        "Label",
	CategoryBlock:        "Block",
	CategoryReturnStmt:   "ReturnStmt",
}

var categoriesByName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for c, n := range categoryNames {
		m[n] = c
	}
	return m
}()

// String returns the category name.
func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return "Invalid"
}

// CategoryFromName looks up a category by its name.
func CategoryFromName(name string) (Category, bool) {
	c, ok := categoriesByName[name]
	return c, ok
}

// IsDecl reports whether the category is a declaration category.
func (c Category) IsDecl() bool {
	switch c {
	case CategoryDecl, CategoryFunction, CategoryMethod, CategoryVar, CategoryParam,
		CategoryField, CategoryTypedef, CategoryRecord, CategoryEnum,
		CategoryEnumConstant, CategoryNamespace:
		return true
	}
	return false
}

// IsStmt reports whether the category is a statement category.
func (c Category) IsStmt() bool {
	switch c {
	case CategoryStmt, CategoryLabel, CategoryBlock, CategoryReturnStmt:
		return true
	}
	return false
}

// Capability is a bitset of the introspection facilities a base category
// provides to refined-subject predicates. A predicate may only require
// capabilities its base category provides; anything else is a
// schema-definition error caught at build time.
type Capability uint32

const (
	// CapLinkage allows predicates to inspect linkage and storage duration.
	CapLinkage Capability = 1 << iota
	// CapVirtuality allows predicates to inspect virtual-method properties.
	CapVirtuality
	// CapParameters allows predicates to inspect a parameter list.
	CapParameters
	// CapMembership allows predicates to inspect the enclosing record.
	CapMembership
	// CapType allows predicates to inspect the declared type.
	CapType
)

var capabilityNames = map[Capability]string{
	CapLinkage:    "Linkage",
	CapVirtuality: "Virtuality",
	CapParameters: "Parameters",
	CapMembership: "Membership",
	CapType:       "Type",
}

var capabilitiesByName = func() map[string]Capability {
	m := make(map[string]Capability, len(capabilityNames))
	for c, n := range capabilityNames {
		m[n] = c
	}
	return m
}()

// String returns the names of the set capabilities, joined by "|".
func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	parts := make([]string, 0, 5)
	for _, bit := range []Capability{CapLinkage, CapVirtuality, CapParameters, CapMembership, CapType} {
		if c&bit != 0 {
			parts = append(parts, capabilityNames[bit])
		}
	}
	return strings.Join(parts, "|")
}

// CapabilityFromName looks up a single capability by name.
func CapabilityFromName(name string) (Capability, bool) {
	c, ok := capabilitiesByName[name]
	return c, ok
}

// categoryCapabilities records the introspection facilities available on an
// instance of each base category.
var categoryCapabilities = map[Category]Capability{
	CategoryFunction:     CapLinkage | CapParameters | CapType,
	CategoryMethod:       CapLinkage | CapVirtuality | CapParameters | CapMembership | CapType,
	CategoryVar:          CapLinkage | CapType,
	CategoryParam:        CapType,
	CategoryField:        CapMembership | CapType,
	CategoryTypedef:      CapType,
	CategoryRecord:       CapLinkage,
	CategoryEnum:         CapLinkage | CapType,
	CategoryEnumConstant: CapType,
	CategoryNamespace:    0,
	CategoryLabel:        0,
	CategoryBlock:        0,
	CategoryReturnStmt:   0,
	CategoryDecl:         0,
	CategoryStmt:         0,
}

// Provides reports whether the category provides every capability in req.
func (c Category) Provides(req Capability) bool {
	return categoryCapabilities[c]&req == req
}

// Node is the external collaborator's view of a syntactic node, the candidate
// an attribute may appertain to. The semantic-analysis layer supplies the
// concrete implementation.
type Node interface {
	// Category returns the node's base syntactic category.
	Category() Category
}

// Predicate is a boolean filter over an instance of a base category. It must
// be evaluable given only the information available on the base category,
// which is enforced through capability requirements at schema-build time.
type Predicate func(Node) bool

// Subject describes what an attribute may appertain to: a base category,
// optionally refined by a predicate.
type Subject struct {
	// Base is the syntactic category the subject matches.
	Base Category
	// Name is the refined subject's name. Empty for bare base subjects.
	Name string
	// Description is the refined subject's human-readable description, used
	// in diagnostics.
	Description string
	// Requires is the capability set the predicate needs from the base
	// category.
	Requires Capability
	// Predicate is the refinement filter. Nil for bare base subjects.
	Predicate Predicate
	// Span is the subject's declaration site, when loaded from a schema file.
	Span diagnostics.Span
}

// BaseSubject creates an unrefined subject for the given category.
func BaseSubject(c Category) Subject {
	return Subject{Base: c}
}

// RefinedSubject creates a refined subject over the given base category.
func RefinedSubject(base Category, name, description string, requires Capability, pred Predicate) Subject {
	return Subject{
		Base:        base,
		Name:        name,
		Description: description,
		Requires:    requires,
		Predicate:   pred,
	}
}

// Refined reports whether the subject carries a refinement predicate.
func (s Subject) Refined() bool {
	return s.Predicate != nil
}

// DisplayName returns the name used for the subject in diagnostics.
func (s Subject) DisplayName() string {
	if s.Description != "" {
		return s.Description
	}
	if s.Name != "" {
		return s.Name
	}
	return s.Base.String()
}

// matchesCategory reports whether the subject's base tag accepts the given
// category, honoring the generalized Decl and Stmt categories.
func (s Subject) matchesCategory(c Category) bool {
	switch s.Base {
	case CategoryDecl:
		return c.IsDecl()
	case CategoryStmt:
		return c.IsStmt()
	default:
		return s.Base == c
	}
}

// Satisfies answers whether the candidate node satisfies the subject: the
// node's category must match the base tag, and for refined subjects the
// predicate must additionally hold.
func (s Subject) Satisfies(n Node) bool {
	if n == nil || !s.matchesCategory(n.Category()) {
		return false
	}
	if s.Predicate != nil {
		return s.Predicate(n)
	}
	return true
}

// Validate checks the subject's static consistency: a refined subject's
// capability requirements must be providable by its base category.
func (s Subject) Validate(diags *diagnostics.Diagnostics) {
	if s.Base == CategoryInvalid {
		diags.PushError(diagnostics.NewSubjectNotKnownError(s.DisplayName(), s.Span))
		return
	}
	if s.Requires == 0 {
		return
	}
	missing := s.Requires &^ categoryCapabilities[s.Base]
	if missing != 0 {
		diags.PushError(diagnostics.NewPredicateCapabilityError(
			s.DisplayName(), s.Base.String(), missing.String(), s.Span))
	}
}
