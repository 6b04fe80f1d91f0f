package wmo

import (
	"github.com/ptolstoi/warcraftassets/iff"
	"github.com/ptolstoi/warcraftassets/warcraft"
)

// GroupInfo declares one group of the model.
type GroupInfo struct {
	Flags       uint32
	BoundingBox warcraft.Box

	// offset into GroupNames, or -1.
	NameOffset int32
}

// GroupInformation is the MOGI chunk.
type GroupInformation struct {
	Groups []GroupInfo
}

// Signature implements iff.Chunk.
func (c *GroupInformation) Signature() iff.Signature {
	return SignatureGroupInformation
}

// Unmarshal implements iff.Chunk.
func (c *GroupInformation) Unmarshal(data []byte, _ warcraft.Version) error {
	var err error
	c.Groups, err = iff.ReadElements[GroupInfo](SignatureGroupInformation, data)
	return err
}

// Marshal implements iff.Chunk.
func (c *GroupInformation) Marshal(_ warcraft.Version) ([]byte, error) {
	return iff.WriteElements(c.Groups)
}

// lists reports whether a group with the given name offset is declared.
func (c *GroupInformation) lists(nameOffset uint32) bool {
	for _, g := range c.Groups {
		if g.NameOffset >= 0 && uint32(g.NameOffset) == nameOffset {
			return true
		}
	}
	return false
}
