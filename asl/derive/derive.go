// Package derive turns a built registry into the concrete artifacts a parser
// and a semantic checker consume: class descriptions, spelling dispatch,
// argument parsers, subject checks, and propagation rules.
//
// Derivation is a pure, single-pass, deterministic transformation. All
// failure detection happened earlier, at registry-build time; the derived
// artifacts report only per-occurrence usage diagnostics.
package derive

import (
	"github.com/attrlang/asl-go/asl/registry"
	"github.com/attrlang/asl-go/asl/schema"
)

// Identity is one semantic attribute identity. A record with
// DistinctSpellings produces one identity per spelling, each with its own
// dispatch entries but sharing the argument and subject schema; every other
// record produces exactly one.
type Identity struct {
	// Record is the owning attribute record.
	Record *schema.Record
	// Spelling is the identity's canonical spelling: its own spelling for
	// distinct-spelling identities, the first-declared spelling otherwise.
	// Empty for records with no user-facing syntax.
	Spelling string
	// Class is the structural description for the AST collaborator. Nil
	// when the record opts out of producing a structural node.
	Class *Class
	// Subjects is the derived subject-check routine.
	Subjects SubjectCheck
	// Propagation is the rule applied when a declaration is cloned.
	Propagation PropagationRule
	// NeedsReevaluation is surfaced to the semantic-analysis collaborator:
	// the resolved instance carried on a template must be re-validated at
	// each instantiation rather than reused verbatim.
	NeedsReevaluation bool
	// Hook is the record's opaque extension point name, invoked by the
	// surrounding collaborator if present. The engine never interprets it.
	Hook string

	// spellings are the spellings dispatching to this identity.
	spellings []string
}

// DisplayName returns the identity's canonical name for diagnostics.
func (i *Identity) DisplayName() string {
	if i.Spelling != "" {
		return i.Spelling
	}
	return i.Record.Name
}

// ReachesSema reports whether occurrences of this identity are handed to the
// semantic-analysis collaborator at all.
func (i *Identity) ReachesSema() bool {
	return !i.Record.Ignored && i.Record.SemaHandler
}

// Artifacts is everything the engine derives from one registry.
type Artifacts struct {
	identities    []*Identity
	dispatch      map[registry.Key]*ParserEntry
	dispatchOrder []registry.Key
}

// Derive produces the artifacts for every record in the registry,
// deterministically, in declaration order.
func Derive(reg *registry.Registry) *Artifacts {
	a := &Artifacts{
		dispatch: make(map[registry.Key]*ParserEntry),
	}

	for _, record := range reg.Records() {
		for _, identity := range identitiesFor(record) {
			a.identities = append(a.identities, identity)
			a.registerDispatch(identity)
		}
	}

	return a
}

// identitiesFor splits a record into its semantic identities.
func identitiesFor(record *schema.Record) []*Identity {
	if record.DistinctSpellings && len(record.Spellings) > 0 {
		identities := make([]*Identity, 0, len(record.Spellings))
		for _, spelling := range record.Spellings {
			identities = append(identities, newIdentity(record, spelling, []string{spelling}))
		}
		return identities
	}

	spelling := ""
	if len(record.Spellings) > 0 {
		spelling = record.Spellings[0]
	}
	return []*Identity{newIdentity(record, spelling, record.Spellings)}
}

// newIdentity builds one identity and its shared artifacts. The spellings
// argument lists the spellings that dispatch to this identity.
func newIdentity(record *schema.Record, canonical string, spellings []string) *Identity {
	identity := &Identity{
		Record:   record,
		Spelling: canonical,
		Subjects: newSubjectCheck(record),
		Propagation: PropagationRule{
			Level: record.Propagation,
			Clone: record.Clone,
		},
		NeedsReevaluation: record.TemplateDependent,
		Hook:              record.Hook,
	}
	// Ignored records never reach the AST; no structural description exists
	// for them regardless of the ASTNode flag.
	if record.ASTNode && !record.Ignored {
		identity.Class = newClass(identity)
	}
	identity.spellings = spellings
	return identity
}

// registerDispatch creates one parser entry per (namespace, spelling) pair
// routing to the identity.
func (a *Artifacts) registerDispatch(identity *Identity) {
	for _, spelling := range identity.spellings {
		for _, namespace := range identity.Record.Namespaces {
			key := registry.Key{Namespace: namespace, Spelling: spelling}
			entry := &ParserEntry{
				Identity:  identity,
				Namespace: namespace,
				Spelling:  spelling,
				Late:      identity.Record.LateParsed,
			}
			a.dispatch[key] = entry
			a.dispatchOrder = append(a.dispatchOrder, key)
		}
	}
}

// Identities returns all derived identities in declaration order.
func (a *Artifacts) Identities() []*Identity {
	return a.identities
}

// Classes returns the structural descriptions of all identities that produce
// an AST node, in declaration order.
func (a *Artifacts) Classes() []*Class {
	classes := make([]*Class, 0, len(a.identities))
	for _, identity := range a.identities {
		if identity.Class != nil {
			classes = append(classes, identity.Class)
		}
	}
	return classes
}

// LookupParser returns the parser entry for a (namespace, spelling) pair.
// Absence means "not a recognized attribute here" and is not an error.
func (a *Artifacts) LookupParser(namespace, spelling string) (*ParserEntry, bool) {
	entry, ok := a.dispatch[registry.Key{Namespace: namespace, Spelling: spelling}]
	return entry, ok
}

// Dispatch returns every parser entry in registration order.
func (a *Artifacts) Dispatch() []*ParserEntry {
	entries := make([]*ParserEntry, 0, len(a.dispatchOrder))
	for _, key := range a.dispatchOrder {
		entries = append(entries, a.dispatch[key])
	}
	return entries
}
