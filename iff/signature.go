package iff

import (
	"fmt"
)

// Signature is a four-character chunk tag.
// On disk it is stored as a little-endian uint32, so the characters appear reversed.
type Signature uint32

// ParseSignature converts a four-character string into a Signature.
func ParseSignature(s string) (Signature, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("%w: '%s' is %d bytes long, expected 4", ErrMalformedSignature, s, len(s))
	}
	return Signature(s[0])<<24 | Signature(s[1])<<16 | Signature(s[2])<<8 | Signature(s[3]), nil
}

// String implements fmt.Stringer.
// Tags are not guaranteed to be printable.
func (s Signature) String() string {
	return string([]byte{byte(s >> 24), byte(s >> 16), byte(s >> 8), byte(s)})
}
