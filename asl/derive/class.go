package derive

import (
	"github.com/attrlang/asl-go/asl/schema"
)

// Class is the structural description of one semantic identity, consumed by
// the AST collaborator. Its fields are the record's argument specifications
// in declared order.
type Class struct {
	// Name is the class name, derived from the identity.
	Name string
	// Fields are the argument specifications in declared order.
	Fields []schema.ArgumentSpec
}

// newClass builds the structural description for an identity.
func newClass(identity *Identity) *Class {
	fields := make([]schema.ArgumentSpec, len(identity.Record.Args))
	copy(fields, identity.Record.Args)
	return &Class{
		Name:   identity.DisplayName(),
		Fields: fields,
	}
}

// FieldByName finds a field by its argument name.
func (c *Class) FieldByName(name string) (*schema.ArgumentSpec, bool) {
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			return &c.Fields[i], true
		}
	}
	return nil, false
}
