package schema

import (
	"github.com/attrlang/asl-go/asl/diagnostics"
)

// PredicateTable maps refined-subject predicate names to implementations.
// The semantic-analysis collaborator registers its predicates here before the
// schema is loaded; the core only binds and invokes them.
type PredicateTable map[string]Predicate

// Schema is the immutable input collection: refined subject declarations and
// attribute records, in declaration order.
type Schema struct {
	// Subjects are the named refined subjects declared by the schema.
	Subjects []Subject
	// Records are the attribute records in declaration order.
	Records []*Record
}

// SubjectByName finds a declared refined subject by name.
func (s *Schema) SubjectByName(name string) (Subject, bool) {
	for _, sub := range s.Subjects {
		if sub.Name == name {
			return sub, true
		}
	}
	return Subject{}, false
}

// RecordByName finds a record by its unique name.
func (s *Schema) RecordByName(name string) (*Record, bool) {
	for _, r := range s.Records {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// Validate checks every subject and record in declaration order, accumulating
// all findings instead of stopping at the first.
func (s *Schema) Validate() diagnostics.Diagnostics {
	diags := diagnostics.NewDiagnostics()

	seenSubjects := make(map[string]bool, len(s.Subjects))
	for _, sub := range s.Subjects {
		if sub.Name != "" {
			if seenSubjects[sub.Name] {
				diags.PushError(diagnostics.NewDuplicateTopError(sub.Name, "subject", sub.Span))
			}
			seenSubjects[sub.Name] = true
		}
		sub.Validate(&diags)
	}

	seenRecords := make(map[string]bool, len(s.Records))
	for _, r := range s.Records {
		if seenRecords[r.Name] {
			diags.PushError(diagnostics.NewDuplicateTopError(r.Name, "attribute", r.Span))
		}
		seenRecords[r.Name] = true
		r.Validate(&diags)
	}

	return diags
}
