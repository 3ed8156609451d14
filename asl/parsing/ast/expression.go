package ast

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Expression represents a value expression in the schema.
// This is a union type that can be one of several expression types.
type Expression interface {
	isExpression()
	Span() lexer.Position
	String() string

	AsStringValue() (*StringValue, bool)
	AsNumericValue() (*NumericValue, bool)
	AsConstantValue() (*ConstantValue, bool)
	AsArray() (*ArrayExpression, bool)
	AsBooleanValue() (bool, bool)
}

// StringValue represents a quoted string literal.
type StringValue struct {
	Pos   lexer.Position
	Value string `@String`
}

func (s *StringValue) isExpression() {}

// Span returns the source position.
func (s *StringValue) Span() lexer.Position { return s.Pos }

// String returns the string representation.
func (s *StringValue) String() string {
	return fmt.Sprintf("%q", s.Value)
}

// GetValue returns the string value. The lexer unquotes string tokens, so the
// stored value is already the literal content.
func (s *StringValue) GetValue() string {
	return s.Value
}

// NumericValue represents a numeric literal.
type NumericValue struct {
	Pos   lexer.Position
	Value string `@Number`
}

func (n *NumericValue) isExpression() {}

// Span returns the source position.
func (n *NumericValue) Span() lexer.Position { return n.Pos }

// String returns the string representation.
func (n *NumericValue) String() string { return n.Value }

// ConstantValue represents a constant/identifier value (true, false, category
// names, propagation levels).
type ConstantValue struct {
	Pos   lexer.Position
	Value string `@Ident`
}

func (c *ConstantValue) isExpression() {}

// Span returns the source position.
func (c *ConstantValue) Span() lexer.Position { return c.Pos }

// String returns the string representation.
func (c *ConstantValue) String() string { return c.Value }

// ArrayExpression represents an array literal like ["a", "b"] or [Var, Field].
type ArrayExpression struct {
	Pos      lexer.Position
	Elements []Expression `"[" (@@ ("," @@)*)? "]"`
}

func (a *ArrayExpression) isExpression() {}

// Span returns the source position.
func (a *ArrayExpression) Span() lexer.Position { return a.Pos }

// String returns the string representation.
func (a *ArrayExpression) String() string {
	parts := make([]string, len(a.Elements))
	for i, elem := range a.Elements {
		parts[i] = elem.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// AsStringValue returns the StringValue if the expression is one.
func (s *StringValue) AsStringValue() (*StringValue, bool)     { return s, true }
func (n *NumericValue) AsStringValue() (*StringValue, bool)    { return nil, false }
func (c *ConstantValue) AsStringValue() (*StringValue, bool)   { return nil, false }
func (a *ArrayExpression) AsStringValue() (*StringValue, bool) { return nil, false }

// AsNumericValue returns the NumericValue if the expression is one.
func (s *StringValue) AsNumericValue() (*NumericValue, bool)     { return nil, false }
func (n *NumericValue) AsNumericValue() (*NumericValue, bool)    { return n, true }
func (c *ConstantValue) AsNumericValue() (*NumericValue, bool)   { return nil, false }
func (a *ArrayExpression) AsNumericValue() (*NumericValue, bool) { return nil, false }

// AsConstantValue returns the ConstantValue if the expression is one.
func (s *StringValue) AsConstantValue() (*ConstantValue, bool)     { return nil, false }
func (n *NumericValue) AsConstantValue() (*ConstantValue, bool)    { return nil, false }
func (c *ConstantValue) AsConstantValue() (*ConstantValue, bool)   { return c, true }
func (a *ArrayExpression) AsConstantValue() (*ConstantValue, bool) { return nil, false }

// AsArray returns the ArrayExpression if the expression is one.
func (s *StringValue) AsArray() (*ArrayExpression, bool)     { return nil, false }
func (n *NumericValue) AsArray() (*ArrayExpression, bool)    { return nil, false }
func (c *ConstantValue) AsArray() (*ArrayExpression, bool)   { return nil, false }
func (a *ArrayExpression) AsArray() (*ArrayExpression, bool) { return a, true }

// AsBooleanValue returns the boolean value if the expression is a constant
// "true" or "false".
func (c *ConstantValue) AsBooleanValue() (bool, bool) {
	if c.Value == "true" {
		return true, true
	}
	if c.Value == "false" {
		return false, true
	}
	return false, false
}

// Default implementations for AsBooleanValue
func (s *StringValue) AsBooleanValue() (bool, bool)     { return false, false }
func (n *NumericValue) AsBooleanValue() (bool, bool)    { return false, false }
func (a *ArrayExpression) AsBooleanValue() (bool, bool) { return false, false }
