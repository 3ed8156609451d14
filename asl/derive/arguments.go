package derive

import (
	"strconv"

	goversion "github.com/hashicorp/go-version"

	"github.com/attrlang/asl-go/asl/diagnostics"
	"github.com/attrlang/asl-go/asl/schema"
)

// RawArgument is one positional argument token handed to a parser entry by
// the external parser collaborator: the surface text plus its location.
// String arguments arrive already unquoted.
type RawArgument struct {
	Raw  string
	Span diagnostics.Span
}

// Argument is one resolved argument of a parsed attribute occurrence.
type Argument struct {
	// Spec is the argument specification the value was matched against.
	Spec *schema.ArgumentSpec
	// Raw is the surface text, or the default literal when defaulted.
	Raw string
	// Symbol is the symbolic value of an enumerated argument.
	Symbol string
	// Values holds the consumed elements of a variadic argument.
	Values []string
	// FromDefault marks a value materialized from the spec's default.
	FromDefault bool
	// Deferred marks a value whose resolution waits for instantiation.
	Deferred bool
}

// ParsedAttribute is the outcome of parsing one attribute occurrence.
type ParsedAttribute struct {
	// Identity is the semantic identity the occurrence resolved to.
	Identity *Identity
	// Arguments are the resolved arguments, in specification order.
	Arguments []Argument
	// Raw preserves the unparsed token range of late-parsed occurrences.
	Raw []RawArgument
	// Deferred marks a late-parsed occurrence whose arguments are captured
	// but not yet resolved.
	Deferred bool
	// Discarded marks an occurrence of an ignored attribute: recognized,
	// syntactically consumed, and never handed to semantic analysis.
	Discarded bool
}

// ParserEntry is the derived per-spelling argument parser of one identity.
type ParserEntry struct {
	// Identity is the semantic identity this spelling routes to.
	Identity *Identity
	// Namespace qualifies the spelling; empty for the unqualified domain.
	Namespace string
	// Spelling is the surface string this entry dispatches.
	Spelling string
	// Late marks an entry that captures raw token ranges instead of eagerly
	// resolving them.
	Late bool
}

// Parse maps the occurrence's positional arguments onto the identity's
// argument specifications. All findings are usage-validation diagnostics:
// recoverable, reported against this occurrence only, never fatal to the
// surrounding compilation.
func (p *ParserEntry) Parse(args []RawArgument, span diagnostics.Span) (*ParsedAttribute, []diagnostics.SchemaError) {
	record := p.Identity.Record

	// Ignored attributes are parsed syntactically and discarded.
	if record.Ignored {
		return &ParsedAttribute{
			Identity:  p.Identity,
			Raw:       args,
			Discarded: true,
		}, nil
	}

	// Late-parsed attributes capture the raw token range for a later phase.
	if p.Late {
		return &ParsedAttribute{
			Identity: p.Identity,
			Raw:      args,
			Deferred: true,
		}, nil
	}

	var errs []diagnostics.SchemaError
	parsed := &ParsedAttribute{Identity: p.Identity}
	next := 0

	for i := range record.Args {
		spec := &record.Args[i]

		if spec.Kind.Variadic() {
			// A variadic kind consumes all remaining arguments from the
			// point it appears. Schema validation guarantees nothing fixed
			// follows it.
			arg := Argument{Spec: spec, Deferred: spec.Kind.Deferred()}
			for ; next < len(args); next++ {
				if err := p.checkElement(spec, args[next]); err != nil {
					errs = append(errs, *err)
					continue
				}
				arg.Values = append(arg.Values, args[next].Raw)
			}
			parsed.Arguments = append(parsed.Arguments, arg)
			continue
		}

		if next < len(args) {
			arg, err := p.resolveOne(spec, args[next])
			next++
			if err != nil {
				errs = append(errs, *err)
				continue
			}
			parsed.Arguments = append(parsed.Arguments, arg)
			continue
		}

		if spec.Default != nil {
			parsed.Arguments = append(parsed.Arguments, Argument{
				Spec:        spec,
				Raw:         *spec.Default,
				FromDefault: true,
			})
			continue
		}
		if spec.Optional {
			continue
		}

		errs = append(errs, diagnostics.NewArgumentCountMismatchError(
			p.Identity.DisplayName(), p.requiredCount(), len(args), span))
		break
	}

	if next < len(args) {
		errs = append(errs, diagnostics.NewArgumentCountMismatchError(
			p.Identity.DisplayName(), p.requiredCount(), len(args), span))
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return parsed, nil
}

// requiredCount is the number of fixed required arguments, used in arity
// diagnostics.
func (p *ParserEntry) requiredCount() int {
	count := 0
	for i := range p.Identity.Record.Args {
		if p.Identity.Record.Args[i].Required() {
			count++
		}
	}
	return count
}

// resolveOne validates a single fixed argument against its specification.
func (p *ParserEntry) resolveOne(spec *schema.ArgumentSpec, raw RawArgument) (Argument, *diagnostics.SchemaError) {
	arg := Argument{Spec: spec, Raw: raw.Raw}

	switch spec.Kind {
	case schema.KindEnum:
		symbol, ok := spec.ResolveEnum(raw.Raw)
		if !ok {
			err := diagnostics.NewUnknownEnumValueError(
				p.Identity.DisplayName(), spec.Name, raw.Raw, spec.Values, raw.Span)
			return arg, &err
		}
		arg.Symbol = symbol
	case schema.KindAlignment:
		// The alignment kind accepts either an integer or a type reference.
		// A non-integer surface form is treated as a type reference and
		// deferred to the concrete use site.
		if _, err := strconv.ParseUint(raw.Raw, 10, 64); err != nil {
			arg.Deferred = true
		}
	default:
		if err := p.checkElement(spec, raw); err != nil {
			return arg, err
		}
		arg.Deferred = spec.Kind.Deferred()
	}

	return arg, nil
}

// checkElement validates one surface token as a value of the spec's element
// kind. Deferred kinds are captured without eager validation.
func (p *ParserEntry) checkElement(spec *schema.ArgumentSpec, raw RawArgument) *diagnostics.SchemaError {
	name := p.Identity.DisplayName()

	switch spec.Kind {
	case schema.KindBool:
		if raw.Raw != "true" && raw.Raw != "false" {
			err := diagnostics.NewArgumentValueError(name, spec.Name, "a boolean", raw.Raw, raw.Span)
			return &err
		}
	case schema.KindInt:
		if _, err := strconv.ParseInt(raw.Raw, 10, 64); err != nil {
			e := diagnostics.NewArgumentValueError(name, spec.Name, "an integer", raw.Raw, raw.Span)
			return &e
		}
	case schema.KindUnsignedInt, schema.KindVariadicUnsigned:
		if _, err := strconv.ParseUint(raw.Raw, 10, 64); err != nil {
			e := diagnostics.NewArgumentValueError(name, spec.Name, "an unsigned integer", raw.Raw, raw.Span)
			return &e
		}
	case schema.KindIdentifier:
		if raw.Raw == "" {
			e := diagnostics.NewArgumentValueError(name, spec.Name, "an identifier", raw.Raw, raw.Span)
			return &e
		}
	case schema.KindVersionTuple:
		if _, err := goversion.NewVersion(raw.Raw); err != nil {
			e := diagnostics.NewArgumentValueError(name, spec.Name, "a version tuple", raw.Raw, raw.Span)
			return &e
		}
	}
	return nil
}
