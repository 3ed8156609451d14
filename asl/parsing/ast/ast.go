// Package ast defines the Abstract Syntax Tree types for ASL schema files.
package ast

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// SchemaFile is the parsed representation of one schema file.
type SchemaFile struct {
	// Tops are the top-level declarations in declaration order.
	Tops []Top
}

// Top is a union of all possible top-level declarations.
type Top interface {
	GetName() string
	AsSubject() *SubjectDecl
	AsAttribute() *AttributeDecl
}

// Subjects returns all subject declarations in order.
func (s *SchemaFile) Subjects() []*SubjectDecl {
	var result []*SubjectDecl
	for _, top := range s.Tops {
		if decl := top.AsSubject(); decl != nil {
			result = append(result, decl)
		}
	}
	return result
}

// Attributes returns all attribute declarations in order.
func (s *SchemaFile) Attributes() []*AttributeDecl {
	var result []*AttributeDecl
	for _, top := range s.Tops {
		if decl := top.AsAttribute(); decl != nil {
			result = append(result, decl)
		}
	}
	return result
}

// Identifier is a bare name with its position.
type Identifier struct {
	Pos  lexer.Position
	Name string `@Ident`
}

// SubjectDecl is a refined subject declaration:
//
//	subject GlobalVar of Var { ... }
type SubjectDecl struct {
	Pos        lexer.Position
	Name       *Identifier `"subject" @@`
	Base       *Identifier `("of" @@)?`
	Properties []*Property `"{" @@* "}"`
}

// GetName returns the subject name.
func (s *SubjectDecl) GetName() string {
	if s.Name == nil {
		return ""
	}
	return s.Name.Name
}

// AsSubject returns the declaration as a SubjectDecl.
func (s *SubjectDecl) AsSubject() *SubjectDecl { return s }

// AsAttribute returns nil; a subject is not an attribute.
func (s *SubjectDecl) AsAttribute() *AttributeDecl { return nil }

// AttributeDecl is an attribute record declaration:
//
//	attribute Visibility { ... }
type AttributeDecl struct {
	Pos     lexer.Position
	Name    *Identifier `"attribute" @@`
	Entries []*Entry    `"{" @@* "}"`
}

// GetName returns the attribute name.
func (a *AttributeDecl) GetName() string {
	if a.Name == nil {
		return ""
	}
	return a.Name.Name
}

// AsSubject returns nil; an attribute is not a subject.
func (a *AttributeDecl) AsSubject() *SubjectDecl { return nil }

// AsAttribute returns the declaration as an AttributeDecl.
func (a *AttributeDecl) AsAttribute() *AttributeDecl { return a }

// Properties returns the attribute's plain properties in order.
func (a *AttributeDecl) Properties() []*Property {
	var result []*Property
	for _, entry := range a.Entries {
		if entry.Property != nil {
			result = append(result, entry.Property)
		}
	}
	return result
}

// Args returns the attribute's argument declarations in order.
func (a *AttributeDecl) Args() []*ArgDecl {
	var result []*ArgDecl
	for _, entry := range a.Entries {
		if entry.Arg != nil {
			result = append(result, entry.Arg)
		}
	}
	return result
}

// Entry is one item inside an attribute block: an argument declaration or a
// plain property.
type Entry struct {
	Pos      lexer.Position
	Arg      *ArgDecl  `@@`
	Property *Property `| @@`
}

// ArgDecl is an argument declaration inside an attribute block:
//
//	arg kind Enum { values = [...] enums = [...] }
type ArgDecl struct {
	Pos        lexer.Position
	Name       *Identifier `"arg" @@`
	Kind       *Identifier `@@`
	Properties []*Property `("{" @@* "}")?`
}

// GetName returns the argument name.
func (a *ArgDecl) GetName() string {
	if a.Name == nil {
		return ""
	}
	return a.Name.Name
}

// Property is a name = value assignment.
type Property struct {
	Pos   lexer.Position
	Name  *Identifier `@@`
	Value Expression  `"=" @@`
}

// String returns the assignment's textual form.
func (p *Property) String() string {
	var b strings.Builder
	if p.Name != nil {
		b.WriteString(p.Name.Name)
	}
	b.WriteString(" = ")
	if p.Value != nil {
		b.WriteString(p.Value.String())
	}
	return b.String()
}

// FindProperty finds a property by name in a property list.
func FindProperty(props []*Property, name string) (*Property, bool) {
	for _, p := range props {
		if p.Name != nil && p.Name.Name == name {
			return p, true
		}
	}
	return nil, false
}
