package wmo

import (
	"github.com/ptolstoi/warcraftassets/dbc"
	"github.com/ptolstoi/warcraftassets/iff"
	"github.com/ptolstoi/warcraftassets/warcraft"
)

// MaterialSize is the size of a material record.
const MaterialSize = 64

// MaterialFlags are the flags of a material.
type MaterialFlags uint32

// Material flags.
const (
	MaterialFlagUnknownPossiblyLightmap MaterialFlags = 0x1
	MaterialFlagUnknown2                MaterialFlags = 0x2
	MaterialFlagTwoSided                MaterialFlags = 0x4
	MaterialFlagDarken                  MaterialFlags = 0x8
	MaterialFlagUnshadedDuringNight     MaterialFlags = 0x10
	MaterialFlagUnknown3                MaterialFlags = 0x20
	MaterialFlagTextureWrappingClamp    MaterialFlags = 0x40
	MaterialFlagTextureWrappingRepeat   MaterialFlags = 0x80
	MaterialFlagUnknown4                MaterialFlags = 0x100
)

// MaterialRecord is the stored part of a material.
// Shader and BlendMode are opaque enums; RuntimeData is written by the client
// at runtime and is carried through unchanged.
type MaterialRecord struct {
	Flags               MaterialFlags
	Shader              uint32
	BlendMode           uint32
	FirstTextureOffset  uint32
	FirstColour         warcraft.BGRA
	FirstFlags          MaterialFlags
	SecondTextureOffset uint32
	SecondColour        warcraft.BGRA
	GroundTypeID        uint32
	ThirdTextureOffset  uint32
	BaseDiffuseColour   warcraft.BGRA
	ThirdFlags          MaterialFlags
	RuntimeData         [4]uint32
}

// Material is a material of the model.
type Material struct {
	MaterialRecord

	// texture paths filled in by Model.ResolveReferences. They are never serialized.
	Texture0 string
	Texture1 string
	Texture2 string
}

// GroundType returns the reference to the material's TerrainType row.
func (m *Material) GroundType() dbc.ForeignKey {
	return dbc.NewForeignKey(dbc.TerrainType, dbc.FieldID, m.GroundTypeID)
}

// Materials is the MOMT chunk.
type Materials struct {
	Materials []*Material
}

// Signature implements iff.Chunk.
func (c *Materials) Signature() iff.Signature {
	return SignatureMaterials
}

// Unmarshal implements iff.Chunk.
func (c *Materials) Unmarshal(data []byte, _ warcraft.Version) error {
	records, err := iff.ReadElements[MaterialRecord](SignatureMaterials, data)
	if err != nil {
		return err
	}

	c.Materials = make([]*Material, len(records))
	for i, rec := range records {
		c.Materials[i] = &Material{MaterialRecord: rec}
	}
	return nil
}

// Marshal implements iff.Chunk.
func (c *Materials) Marshal(_ warcraft.Version) ([]byte, error) {
	records := make([]MaterialRecord, len(c.Materials))
	for i, m := range c.Materials {
		records[i] = m.MaterialRecord
	}
	return iff.WriteElements(records)
}
