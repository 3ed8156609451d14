package derive

import (
	"strings"

	"github.com/attrlang/asl-go/asl/diagnostics"
	"github.com/attrlang/asl-go/asl/schema"
)

// SubjectCheck is the derived subject-satisfaction routine of one identity,
// specialized to its record's declared subjects. An empty subject list means
// the routine always succeeds.
type SubjectCheck struct {
	attrName string
	ignored  bool
	subjects []schema.Subject
}

// newSubjectCheck specializes the subject model to one record.
func newSubjectCheck(record *schema.Record) SubjectCheck {
	subjects := make([]schema.Subject, len(record.Subjects))
	copy(subjects, record.Subjects)
	return SubjectCheck{
		attrName: record.CanonicalSpelling(),
		ignored:  record.Ignored,
		subjects: subjects,
	}
}

// Unconstrained reports whether the record declared no subjects, making every
// syntactic category eligible.
func (c SubjectCheck) Unconstrained() bool {
	return len(c.subjects) == 0
}

// Satisfied reports whether the candidate node satisfies some declared
// subject, base or refined.
func (c SubjectCheck) Satisfied(n schema.Node) bool {
	if len(c.subjects) == 0 {
		return true
	}
	for _, s := range c.subjects {
		if s.Satisfies(n) {
			return true
		}
	}
	return false
}

// Check validates the node against the subject set and returns a recoverable
// usage diagnostic on mismatch. Ignored records bypass validation entirely.
func (c SubjectCheck) Check(n schema.Node, span diagnostics.Span) *diagnostics.SchemaError {
	if c.ignored || c.Satisfied(n) {
		return nil
	}
	category := "an unknown category"
	if n != nil {
		category = "a " + n.Category().String()
	}
	err := diagnostics.NewSubjectMismatchError(c.attrName, category, c.expectedList(), span)
	return &err
}

// expectedList renders the declared subjects for diagnostics.
func (c SubjectCheck) expectedList() string {
	names := make([]string, len(c.subjects))
	for i, s := range c.subjects {
		names[i] = s.DisplayName()
	}
	return strings.Join(names, ", ")
}
