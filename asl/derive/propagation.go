package derive

import (
	"github.com/attrlang/asl-go/asl/schema"
)

// PropagationRule decides whether a resolved attribute instance is carried
// onto a clone of its owning declaration, during redeclaration merging or
// template instantiation.
type PropagationRule struct {
	// Level is the record's propagation level.
	Level schema.Propagation
	// Clone suppresses propagation entirely when false, regardless of level.
	Clone bool
}

// ShouldPropagate reports whether the instance propagates onto a clone of the
// given target category. Parameter targets require the inheritableParam
// level; any other target requires at least inheritable.
func (p PropagationRule) ShouldPropagate(target schema.Category) bool {
	if !p.Clone {
		return false
	}
	if target == schema.CategoryParam {
		return p.Level.AtLeast(schema.PropagationInheritedParam)
	}
	return p.Level.AtLeast(schema.PropagationInherited)
}
