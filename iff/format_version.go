package iff

import (
	"encoding/binary"

	"github.com/ptolstoi/warcraftassets/warcraft"
)

// SignatureFormatVersion is the tag of the format version chunk.
const SignatureFormatVersion Signature = 'M'<<24 | 'V'<<16 | 'E'<<8 | 'R'

// FormatVersion is the MVER chunk that opens every container file.
// The stored number is the file's own revision, not a warcraft.Version epoch.
type FormatVersion struct {
	Value uint32
}

// Signature implements Chunk.
func (c *FormatVersion) Signature() Signature {
	return SignatureFormatVersion
}

// Unmarshal implements Chunk.
func (c *FormatVersion) Unmarshal(data []byte, _ warcraft.Version) error {
	if err := CheckSize(SignatureFormatVersion, data, 4); err != nil {
		return err
	}
	c.Value = binary.LittleEndian.Uint32(data)
	return nil
}

// Marshal implements Chunk.
func (c *FormatVersion) Marshal(_ warcraft.Version) ([]byte, error) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, c.Value)
	return buf, nil
}
