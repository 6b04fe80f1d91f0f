// Package strtab implements tables of null-terminated strings addressed by byte offset.
package strtab

// Entry is a string and the offset of its first byte.
type Entry struct {
	Offset uint32
	Value  string
}

// Table is an immutable buffer of consecutive null-terminated strings.
// Only the offset of the first byte of each run is an entry.
type Table struct {
	buf     []byte
	entries map[uint32]string
	order   []uint32
}

// Build indexes buf in a single pass.
// Empty runs are entries; bytes after the last terminator are not.
// buf is copied.
func Build(buf []byte) *Table {
	t := &Table{
		buf:     append([]byte(nil), buf...),
		entries: make(map[uint32]string),
	}

	start := 0
	for i, b := range t.buf {
		if b != 0 {
			continue
		}

		t.entries[uint32(start)] = string(t.buf[start:i])
		t.order = append(t.order, uint32(start))
		start = i + 1
	}

	return t
}

// Lookup returns the string starting at offset.
// It returns false if offset is not the start of a run.
func (t *Table) Lookup(offset uint32) (string, bool) {
	s, ok := t.entries[offset]
	return s, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.order)
}

// Entries returns all entries in offset order.
func (t *Table) Entries() []Entry {
	ret := make([]Entry, len(t.order))
	for i, off := range t.order {
		ret[i] = Entry{Offset: off, Value: t.entries[off]}
	}
	return ret
}

// Strings returns the non-empty strings in offset order.
func (t *Table) Strings() []string {
	var ret []string
	for _, off := range t.order {
		if s := t.entries[off]; s != "" {
			ret = append(ret, s)
		}
	}
	return ret
}

// Offset returns the offset of the first entry equal to s.
func (t *Table) Offset(s string) (uint32, bool) {
	for _, off := range t.order {
		if t.entries[off] == s {
			return off, true
		}
	}
	return 0, false
}

// Bytes returns a copy of the original buffer, padding included.
func (t *Table) Bytes() []byte {
	return append([]byte(nil), t.buf...)
}
