package dbc

import (
	"fmt"
	"strconv"
)

// MemoryRegistry is a Registry backed by in-memory records.
// It is not safe for concurrent writes.
type MemoryRegistry struct {
	tables map[DatabaseName][]Record
}

// NewMemoryRegistry allocates a MemoryRegistry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		tables: make(map[DatabaseName][]Record),
	}
}

// Add stores a record.
func (r *MemoryRegistry) Add(rec Record) {
	r.tables[rec.Table] = append(r.tables[rec.Table], rec)
}

// Lookup implements Registry.
func (r *MemoryRegistry) Lookup(table DatabaseName, field string, key uint32) (Record, error) {
	for _, rec := range r.tables[table] {
		if field == FieldID {
			if rec.ID == key {
				return rec, nil
			}
			continue
		}

		if v, ok := rec.Fields[field]; ok && v == strconv.FormatUint(uint64(key), 10) {
			return rec, nil
		}
	}

	return Record{}, fmt.Errorf("%w: no %s record with %s %d", ErrUnresolvedReference, table, field, key)
}
