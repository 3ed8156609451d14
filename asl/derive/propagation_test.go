package derive

import (
	"testing"

	"github.com/attrlang/asl-go/asl/schema"
)

var propagationTargets = []schema.Category{
	schema.CategoryFunction, schema.CategoryMethod, schema.CategoryVar,
	schema.CategoryParam, schema.CategoryField, schema.CategoryTypedef,
	schema.CategoryRecord, schema.CategoryEnum, schema.CategoryEnumConstant,
	schema.CategoryNamespace,
}

func TestPropagationNoneNeverPropagates(t *testing.T) {
	rule := PropagationRule{Level: schema.PropagationNone, Clone: true}
	for _, target := range propagationTargets {
		if rule.ShouldPropagate(target) {
			t.Errorf("Expected no propagation onto %s", target)
		}
	}
}

func TestPropagationInheritedSkipsParameters(t *testing.T) {
	rule := PropagationRule{Level: schema.PropagationInherited, Clone: true}
	for _, target := range propagationTargets {
		want := target != schema.CategoryParam
		if got := rule.ShouldPropagate(target); got != want {
			t.Errorf("Target %s: got %v, want %v", target, got, want)
		}
	}
}

func TestPropagationMonotonicity(t *testing.T) {
	// The stronger level must propagate everywhere the weaker one does.
	inherited := PropagationRule{Level: schema.PropagationInherited, Clone: true}
	param := PropagationRule{Level: schema.PropagationInheritedParam, Clone: true}

	for _, target := range propagationTargets {
		if inherited.ShouldPropagate(target) && !param.ShouldPropagate(target) {
			t.Errorf("Target %s: inheritableParam propagates less than inheritable", target)
		}
	}
	if !param.ShouldPropagate(schema.CategoryParam) {
		t.Error("Expected inheritableParam to additionally cover parameters")
	}
}

func TestCloneFlagSuppressesPropagation(t *testing.T) {
	rule := PropagationRule{Level: schema.PropagationInheritedParam, Clone: false}
	for _, target := range propagationTargets {
		if rule.ShouldPropagate(target) {
			t.Errorf("Expected clone=false to suppress propagation onto %s", target)
		}
	}
}

func TestDerivedPropagationRule(t *testing.T) {
	r := schema.NewRecord("Deprecated")
	r.Spellings = []string{"deprecated"}
	r.Namespaces = []string{""}
	r.Propagation = schema.PropagationInherited

	artifacts := buildArtifacts(t, r)
	rule := artifacts.Identities()[0].Propagation
	if !rule.ShouldPropagate(schema.CategoryFunction) {
		t.Error("Expected an inheritable attribute to propagate onto a redeclaration")
	}
	if rule.ShouldPropagate(schema.CategoryParam) {
		t.Error("Expected an inheritable attribute not to propagate onto a parameter")
	}
}
