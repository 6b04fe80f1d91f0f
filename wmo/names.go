package wmo

import (
	"github.com/ptolstoi/warcraftassets/iff"
	"github.com/ptolstoi/warcraftassets/strtab"
	"github.com/ptolstoi/warcraftassets/warcraft"
)

type stringBlock struct {
	table *strtab.Table
}

// Unmarshal implements iff.Chunk.
func (b *stringBlock) Unmarshal(data []byte, _ warcraft.Version) error {
	b.table = strtab.Build(data)
	return nil
}

// Marshal implements iff.Chunk.
func (b *stringBlock) Marshal(_ warcraft.Version) ([]byte, error) {
	return b.Table().Bytes(), nil
}

// Table returns the string table of the chunk.
func (b *stringBlock) Table() *strtab.Table {
	if b.table == nil {
		b.table = strtab.Build(nil)
	}
	return b.table
}

// Textures is the MOTX chunk, the texture paths referenced by materials.
type Textures struct {
	stringBlock
}

// NewTextures allocates a Textures chunk from a string block.
func NewTextures(buf []byte) *Textures {
	return &Textures{stringBlock{strtab.Build(buf)}}
}

// Signature implements iff.Chunk.
func (c *Textures) Signature() iff.Signature {
	return SignatureTextures
}

// GroupNames is the MOGN chunk, the internal and descriptive names of groups.
type GroupNames struct {
	stringBlock
}

// NewGroupNames allocates a GroupNames chunk from a string block.
func NewGroupNames(buf []byte) *GroupNames {
	return &GroupNames{stringBlock{strtab.Build(buf)}}
}

// Signature implements iff.Chunk.
func (c *GroupNames) Signature() iff.Signature {
	return SignatureGroupNames
}

// DoodadNames is the MODN chunk, the model paths of doodads.
type DoodadNames struct {
	stringBlock
}

// NewDoodadNames allocates a DoodadNames chunk from a string block.
func NewDoodadNames(buf []byte) *DoodadNames {
	return &DoodadNames{stringBlock{strtab.Build(buf)}}
}

// Signature implements iff.Chunk.
func (c *DoodadNames) Signature() iff.Signature {
	return SignatureDoodadNames
}
