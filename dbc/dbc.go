// Package dbc contains references into the client database tables.
// The tables themselves are an external service reached through a Registry.
package dbc

import (
	"errors"
	"fmt"
)

// ErrUnresolvedReference is returned when a key does not resolve in its table.
var ErrUnresolvedReference = errors.New("unresolved reference")

// DatabaseName is the name of a client database table.
type DatabaseName string

// Database tables referenced by asset chunks.
const (
	TerrainType   DatabaseName = "TerrainType"
	WMOAreaTable  DatabaseName = "WMOAreaTable"
	AnimationData DatabaseName = "AnimationData"
)

// FieldID is the primary key field present in every table.
const FieldID = "ID"

// Record is a database row.
type Record struct {
	Table  DatabaseName
	ID     uint32
	Fields map[string]string
}

// Registry looks up the record of table whose field equals key.
// Implementations return an error wrapping ErrUnresolvedReference when there is none.
type Registry interface {
	Lookup(table DatabaseName, field string, key uint32) (Record, error)
}

// ForeignKey is a reference to a record in a database table.
// It holds no reference to the record itself.
type ForeignKey struct {
	Table DatabaseName
	Field string
	Key   uint32
}

// NewForeignKey returns a ForeignKey. Any key is valid, even if it never resolves.
func NewForeignKey(table DatabaseName, field string, key uint32) ForeignKey {
	return ForeignKey{
		Table: table,
		Field: field,
		Key:   key,
	}
}

// String implements fmt.Stringer.
func (k ForeignKey) String() string {
	return fmt.Sprintf("%s.%s=%d", k.Table, k.Field, k.Key)
}

// Resolve looks the key up in reg. Nothing is cached.
func (k ForeignKey) Resolve(reg Registry) (Record, error) {
	rec, err := reg.Lookup(k.Table, k.Field, k.Key)
	if err != nil {
		return Record{}, fmt.Errorf("%v: %w", k, err)
	}
	return rec, nil
}
