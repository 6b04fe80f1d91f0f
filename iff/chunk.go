// Package iff contains the machinery shared by all chunked containers:
// tagged chunk headers, size validation and chunk streams.
package iff

import (
	"errors"
	"fmt"

	"github.com/ptolstoi/warcraftassets/warcraft"
)

var (
	// ErrMalformedSignature is returned when a tag does not match the expected signature.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrTruncatedBuffer is returned when a payload does not have the size its type requires.
	ErrTruncatedBuffer = errors.New("truncated buffer")
)

// Chunk is a tagged binary record.
//
// Unmarshal and Marshal receive the same caller-supplied version so that
// versioned layouts round-trip; chunks without versioned fields ignore it.
type Chunk interface {
	Signature() Signature
	Unmarshal(data []byte, version warcraft.Version) error
	Marshal(version warcraft.Version) ([]byte, error)
}

// Unmarshal decodes data into c after checking that sig is the tag c is registered under.
func Unmarshal(c Chunk, sig Signature, data []byte, version warcraft.Version) error {
	if sig != c.Signature() {
		return fmt.Errorf("%w: got '%v', expected '%v'", ErrMalformedSignature, sig, c.Signature())
	}
	return c.Unmarshal(data, version)
}

// CheckSize fails unless data is exactly size bytes long.
func CheckSize(sig Signature, data []byte, size int) error {
	if len(data) != size {
		return fmt.Errorf("%w: %v payload is %d bytes, expected %d", ErrTruncatedBuffer, sig, len(data), size)
	}
	return nil
}

// ElementCount returns the number of elementSize records stored in data.
// It fails if data is not an exact multiple of elementSize.
func ElementCount(sig Signature, data []byte, elementSize int) (int, error) {
	if len(data)%elementSize != 0 {
		return 0, fmt.Errorf("%w: %v payload is %d bytes, not a multiple of %d",
			ErrTruncatedBuffer, sig, len(data), elementSize)
	}
	return len(data) / elementSize, nil
}

// Raw is a chunk whose payload is kept verbatim.
// It is used for chunks that have no registered type.
type Raw struct {
	Tag  Signature
	Data []byte
}

// Signature implements Chunk.
func (c *Raw) Signature() Signature {
	return c.Tag
}

// Unmarshal implements Chunk.
func (c *Raw) Unmarshal(data []byte, _ warcraft.Version) error {
	c.Data = append([]byte(nil), data...)
	return nil
}

// Marshal implements Chunk.
func (c *Raw) Marshal(_ warcraft.Version) ([]byte, error) {
	return append([]byte(nil), c.Data...), nil
}
