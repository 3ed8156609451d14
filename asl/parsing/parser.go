// Package parsing provides a parser for ASL schema files using Participle.
package parsing

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/attrlang/asl-go/asl/parsing/ast"
)

// RawSchema is the raw parse tree structure that matches the grammar.
// This is converted to SchemaFile after parsing.
type RawSchema struct {
	Pos   lexer.Position
	Items []*TopLevelItem `@@*`
}

// TopLevelItem is a union of all possible top-level declarations.
type TopLevelItem struct {
	Pos       lexer.Position
	Subject   *ast.SubjectDecl   `@@`
	Attribute *ast.AttributeDecl `| @@`
}

// ToTop converts the item to the Top interface.
func (t *TopLevelItem) ToTop() ast.Top {
	switch {
	case t.Subject != nil:
		return t.Subject
	case t.Attribute != nil:
		return t.Attribute
	default:
		return nil
	}
}

// parser is the Participle parser instance.
var parser = participle.MustBuild[RawSchema](
	participle.Lexer(SchemaLexer),
	participle.Elide("Whitespace", "Newline", "Comment", "MultiLineComment"),
	participle.Unquote("String"),
	participle.UseLookahead(4),
	participle.Union[ast.Expression](
		&ast.ArrayExpression{},
		&ast.StringValue{},
		&ast.NumericValue{},
		&ast.ConstantValue{},
	),
)

// ParseSchema parses an ASL schema from an io.Reader.
func ParseSchema(filename string, r io.Reader) (*ast.SchemaFile, error) {
	raw, err := parser.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	return convertRawSchema(raw), nil
}

// ParseSchemaString parses an ASL schema from a string.
func ParseSchemaString(filename, input string) (*ast.SchemaFile, error) {
	return ParseSchema(filename, strings.NewReader(input))
}

// MustParseSchemaString parses an ASL schema from a string, panicking on error.
func MustParseSchemaString(filename, input string) *ast.SchemaFile {
	schema, err := ParseSchemaString(filename, input)
	if err != nil {
		panic(err)
	}
	return schema
}

// convertRawSchema converts the raw parse tree to the AST.
func convertRawSchema(raw *RawSchema) *ast.SchemaFile {
	schema := &ast.SchemaFile{
		Tops: make([]ast.Top, 0, len(raw.Items)),
	}
	for _, item := range raw.Items {
		if top := item.ToTop(); top != nil {
			schema.Tops = append(schema.Tops, top)
		}
	}
	return schema
}
