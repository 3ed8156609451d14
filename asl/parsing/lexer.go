package parsing

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// SchemaLexer defines the token types for ASL schema files.
var SchemaLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Keywords
	{Name: "Keyword", Pattern: `\b(subject|attribute|arg|of)\b`},

	// Punctuation
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Equal", Pattern: `=`},

	// Literals
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Number", Pattern: `-?\d+(?:\.\d+)?`},

	// Identifiers
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_]*`},

	// Comments
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "MultiLineComment", Pattern: `/\*(?:[^*]|\*[^/])*\*/`},

	// Whitespace and newlines
	{Name: "Newline", Pattern: `[\r\n]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})
