package schema

import (
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/attrlang/asl-go/asl/diagnostics"
	"github.com/attrlang/asl-go/asl/parsing/ast"
)

// Load lowers a parsed schema file into the logical schema model, binding
// refined-subject predicates from the given table. All schema-definition
// findings are accumulated in the returned diagnostics; record-level
// consistency is checked later, at registry-build time.
func Load(file *ast.SchemaFile, predicates PredicateTable) (*Schema, diagnostics.Diagnostics) {
	loader := &loader{
		predicates: predicates,
		diags:      diagnostics.NewDiagnostics(),
	}

	schema := &Schema{}
	for _, top := range file.Tops {
		if decl := top.AsSubject(); decl != nil {
			schema.Subjects = append(schema.Subjects, loader.loadSubject(decl))
		}
	}
	for _, top := range file.Tops {
		if decl := top.AsAttribute(); decl != nil {
			schema.Records = append(schema.Records, loader.loadRecord(decl, schema))
		}
	}

	return schema, loader.diags
}

type loader struct {
	predicates PredicateTable
	diags      diagnostics.Diagnostics
}

// spanOf converts a lexer position and token text into a diagnostics span.
func spanOf(pos lexer.Position, text string) diagnostics.Span {
	return diagnostics.NewSpan(pos.Offset, pos.Offset+len(text), diagnostics.FileIDZero)
}

// loadSubject lowers one refined subject declaration.
func (l *loader) loadSubject(decl *ast.SubjectDecl) Subject {
	subject := Subject{
		Name: decl.GetName(),
		Span: spanOf(decl.Name.Pos, decl.GetName()),
	}

	if decl.Base == nil {
		l.diags.PushError(diagnostics.NewSubjectBaseMissingError(subject.Name, subject.Span))
	} else {
		base, ok := CategoryFromName(decl.Base.Name)
		if !ok {
			l.diags.PushError(diagnostics.NewSubjectNotKnownError(decl.Base.Name, spanOf(decl.Base.Pos, decl.Base.Name)))
		}
		subject.Base = base
	}

	predicateName := subject.Name
	for _, prop := range decl.Properties {
		switch prop.Name.Name {
		case "description":
			subject.Description = l.stringValue(prop)
		case "requires":
			for _, name := range l.constantList(prop) {
				capability, ok := CapabilityFromName(name)
				if !ok {
					l.diags.PushError(diagnostics.NewPropertyTypeError(
						"requires", "a capability name", name, l.propSpan(prop)))
					continue
				}
				subject.Requires |= capability
			}
		case "predicate":
			predicateName = l.stringValue(prop)
		default:
			l.diags.PushError(diagnostics.NewPropertyNotKnownError(prop.Name.Name, l.propSpan(prop)))
		}
	}

	pred, ok := l.predicates[predicateName]
	if !ok {
		l.diags.PushError(diagnostics.NewPredicateNotKnownError(subject.Name, predicateName, subject.Span))
	}
	subject.Predicate = pred

	return subject
}

// loadRecord lowers one attribute record declaration. Subject references
// resolve against the already-loaded refined subjects, then base categories.
func (l *loader) loadRecord(decl *ast.AttributeDecl, schema *Schema) *Record {
	record := NewRecord(decl.GetName())
	record.Span = spanOf(decl.Name.Pos, record.Name)

	for _, prop := range decl.Properties() {
		switch prop.Name.Name {
		case "spellings":
			record.Spellings = l.stringList(prop)
		case "namespaces":
			record.Namespaces = l.stringList(prop)
		case "subjects":
			for _, name := range l.constantList(prop) {
				record.Subjects = append(record.Subjects, l.resolveSubject(name, prop, schema))
			}
		case "inherit":
			value := l.constantValue(prop)
			level, ok := PropagationFromName(value)
			if !ok {
				l.diags.PushError(diagnostics.NewPropagationNotKnownError(value, l.propSpan(prop)))
			}
			record.Propagation = level
		case "late":
			record.LateParsed = l.boolValue(prop)
		case "template":
			record.TemplateDependent = l.boolValue(prop)
		case "clone":
			record.Clone = l.boolValue(prop)
		case "astNode":
			record.ASTNode = l.boolValue(prop)
		case "sema":
			record.SemaHandler = l.boolValue(prop)
		case "ignored":
			record.Ignored = l.boolValue(prop)
		case "distinct":
			record.DistinctSpellings = l.boolValue(prop)
		case "hook":
			record.Hook = l.stringValue(prop)
		default:
			l.diags.PushError(diagnostics.NewPropertyNotKnownError(prop.Name.Name, l.propSpan(prop)))
		}
	}

	for _, argDecl := range decl.Args() {
		record.Args = append(record.Args, l.loadArg(argDecl))
	}

	return record
}

// resolveSubject resolves a subject reference: a declared refined subject
// first, then a base category.
func (l *loader) resolveSubject(name string, prop *ast.Property, schema *Schema) Subject {
	if subject, ok := schema.SubjectByName(name); ok {
		return subject
	}
	if category, ok := CategoryFromName(name); ok {
		return BaseSubject(category)
	}
	l.diags.PushError(diagnostics.NewSubjectNotKnownError(name, l.propSpan(prop)))
	return Subject{}
}

// loadArg lowers one argument declaration.
func (l *loader) loadArg(decl *ast.ArgDecl) ArgumentSpec {
	spec := ArgumentSpec{
		Name: decl.GetName(),
		Span: spanOf(decl.Name.Pos, decl.GetName()),
	}

	kind, ok := ArgumentKindFromName(decl.Kind.Name)
	if !ok {
		l.diags.PushError(diagnostics.NewArgumentKindNotKnownError(decl.Kind.Name, spanOf(decl.Kind.Pos, decl.Kind.Name)))
	}
	spec.Kind = kind

	for _, prop := range decl.Properties {
		switch prop.Name.Name {
		case "default":
			raw := l.literalValue(prop)
			spec.Default = &raw
		case "optional":
			spec.Optional = l.boolValue(prop)
		case "values":
			spec.Values = l.stringList(prop)
		case "enums":
			spec.Enums = l.constantOrStringList(prop)
		default:
			l.diags.PushError(diagnostics.NewPropertyNotKnownError(prop.Name.Name, l.propSpan(prop)))
		}
	}

	return spec
}

func (l *loader) propSpan(prop *ast.Property) diagnostics.Span {
	return spanOf(prop.Name.Pos, prop.Name.Name)
}

// stringValue extracts a string property value.
func (l *loader) stringValue(prop *ast.Property) string {
	if s, ok := prop.Value.AsStringValue(); ok {
		return s.GetValue()
	}
	l.diags.PushError(diagnostics.NewPropertyTypeError(
		prop.Name.Name, "a string", prop.Value.String(), l.propSpan(prop)))
	return ""
}

// boolValue extracts a boolean property value.
func (l *loader) boolValue(prop *ast.Property) bool {
	if c, ok := prop.Value.AsConstantValue(); ok {
		if b, ok := c.AsBooleanValue(); ok {
			return b
		}
	}
	l.diags.PushError(diagnostics.NewPropertyTypeError(
		prop.Name.Name, "true or false", prop.Value.String(), l.propSpan(prop)))
	return false
}

// constantValue extracts a bare constant property value.
func (l *loader) constantValue(prop *ast.Property) string {
	if c, ok := prop.Value.AsConstantValue(); ok {
		return c.Value
	}
	l.diags.PushError(diagnostics.NewPropertyTypeError(
		prop.Name.Name, "a constant", prop.Value.String(), l.propSpan(prop)))
	return ""
}

// literalValue extracts a scalar literal as its raw text: a string, number,
// or boolean constant. Used for argument defaults, whose representability is
// checked against the argument kind later.
func (l *loader) literalValue(prop *ast.Property) string {
	if s, ok := prop.Value.AsStringValue(); ok {
		return s.GetValue()
	}
	if n, ok := prop.Value.AsNumericValue(); ok {
		if _, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return n.Value
		}
	}
	if c, ok := prop.Value.AsConstantValue(); ok {
		return c.Value
	}
	l.diags.PushError(diagnostics.NewPropertyTypeError(
		prop.Name.Name, "a literal", prop.Value.String(), l.propSpan(prop)))
	return ""
}

// stringList extracts a list of strings.
func (l *loader) stringList(prop *ast.Property) []string {
	array, ok := prop.Value.AsArray()
	if !ok {
		l.diags.PushError(diagnostics.NewPropertyTypeError(
			prop.Name.Name, "a list of strings", prop.Value.String(), l.propSpan(prop)))
		return nil
	}
	result := make([]string, 0, len(array.Elements))
	for _, elem := range array.Elements {
		s, ok := elem.AsStringValue()
		if !ok {
			l.diags.PushError(diagnostics.NewPropertyTypeError(
				prop.Name.Name, "a list of strings", elem.String(), l.propSpan(prop)))
			continue
		}
		result = append(result, s.GetValue())
	}
	return result
}

// constantList extracts a list of bare constants.
func (l *loader) constantList(prop *ast.Property) []string {
	array, ok := prop.Value.AsArray()
	if !ok {
		l.diags.PushError(diagnostics.NewPropertyTypeError(
			prop.Name.Name, "a list of constants", prop.Value.String(), l.propSpan(prop)))
		return nil
	}
	result := make([]string, 0, len(array.Elements))
	for _, elem := range array.Elements {
		c, ok := elem.AsConstantValue()
		if !ok {
			l.diags.PushError(diagnostics.NewPropertyTypeError(
				prop.Name.Name, "a list of constants", elem.String(), l.propSpan(prop)))
			continue
		}
		result = append(result, c.Value)
	}
	return result
}

// constantOrStringList extracts a list whose elements may be constants or
// strings. Enum symbolic values read naturally either way.
func (l *loader) constantOrStringList(prop *ast.Property) []string {
	array, ok := prop.Value.AsArray()
	if !ok {
		l.diags.PushError(diagnostics.NewPropertyTypeError(
			prop.Name.Name, "a list", prop.Value.String(), l.propSpan(prop)))
		return nil
	}
	result := make([]string, 0, len(array.Elements))
	for _, elem := range array.Elements {
		if s, ok := elem.AsStringValue(); ok {
			result = append(result, s.GetValue())
			continue
		}
		if c, ok := elem.AsConstantValue(); ok {
			result = append(result, c.Value)
			continue
		}
		l.diags.PushError(diagnostics.NewPropertyTypeError(
			prop.Name.Name, "a list of names", elem.String(), l.propSpan(prop)))
	}
	return result
}
