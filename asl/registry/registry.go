// Package registry maps (namespace, spelling) pairs to their owning attribute
// records.
package registry

import (
	"github.com/attrlang/asl-go/asl/diagnostics"
	"github.com/attrlang/asl-go/asl/schema"
)

// Key is a registry lookup key: a spelling qualified by its namespace. The
// empty namespace denotes the unqualified, GNU-style spelling domain.
type Key struct {
	Namespace string
	Spelling  string
}

// Registry is the built mapping from every declared (namespace, spelling)
// pair to the owning attribute record. Once built it is read-only and safe to
// share across any number of concurrent readers without synchronization.
type Registry struct {
	records []*schema.Record
	entries map[Key]*schema.Record
	keys    []Key // insertion order, for deterministic iteration
}

// Build validates the records in declaration order and constructs the
// registry. All schema-definition errors are collected; if any occur, no
// registry is produced. There is no partial or degraded registry.
func Build(s *schema.Schema) (*Registry, diagnostics.Diagnostics) {
	diags := s.Validate()

	reg := &Registry{
		records: s.Records,
		entries: make(map[Key]*schema.Record),
	}

	// Insertion runs in declaration order so duplicate-key errors are
	// reported first-conflict-wins, not by completion time.
	for _, record := range s.Records {
		for _, spelling := range record.Spellings {
			for _, namespace := range record.Namespaces {
				key := Key{Namespace: namespace, Spelling: spelling}
				if existing, ok := reg.entries[key]; ok {
					diags.PushError(diagnostics.NewDuplicateSpellingError(
						namespace, spelling, existing.Name, record.Name, record.Span))
					continue
				}
				reg.entries[key] = record
				reg.keys = append(reg.keys, key)
			}
		}
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return reg, diags
}

// Lookup returns the record owning the given (namespace, spelling) pair.
// Absence is a normal outcome: the caller treats it as "not a recognized
// attribute here", not as an error.
func (r *Registry) Lookup(namespace, spelling string) (*schema.Record, bool) {
	record, ok := r.entries[Key{Namespace: namespace, Spelling: spelling}]
	return record, ok
}

// Records returns all records in declaration order, including records with no
// user-facing syntax.
func (r *Registry) Records() []*schema.Record {
	return r.records
}

// RecordByName finds a record by its unique name. This is the only path to
// records with an empty spellings list, which are reachable through
// compiler-internal synthesis but never through text lookup.
func (r *Registry) RecordByName(name string) (*schema.Record, bool) {
	for _, record := range r.records {
		if record.Name == name {
			return record, true
		}
	}
	return nil, false
}

// Keys returns every registered (namespace, spelling) pair in insertion
// order.
func (r *Registry) Keys() []Key {
	keys := make([]Key, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of registered spelling entries.
func (r *Registry) Len() int {
	return len(r.keys)
}
