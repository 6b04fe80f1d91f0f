package wmo

import (
	"github.com/ptolstoi/warcraftassets/dbc"
	"github.com/ptolstoi/warcraftassets/iff"
	"github.com/ptolstoi/warcraftassets/warcraft"
)

// HeaderSize is the size of the MOHD payload.
const HeaderSize = 64

// RootFlags are the flags of a root header.
type RootFlags uint16

// Root flags.
const (
	RootFlagAttenuateVerticesBasedOnPortalDistance RootFlags = 0x1
	RootFlagSkipBaseColour                         RootFlags = 0x2
	RootFlagUseLiquidTypeFromDBC                   RootFlags = 0x4
	RootFlagLightenInteriors                       RootFlags = 0x8
	RootFlagHasLOD                                 RootFlags = 0x10
)

// Header is the MOHD chunk. It declares how many of each entity the model has.
type Header struct {
	TextureCount        uint32
	GroupCount          uint32
	PortalCount         uint32
	LightCount          uint32
	DoodadNameCount     uint32
	DoodadInstanceCount uint32
	DoodadSetCount      uint32
	AmbientColour       warcraft.BGRA
	AreaTableID         uint32
	BoundingBox         warcraft.Box
	Flags               RootFlags
	LODCount            uint16
}

// AreaTable returns the reference to the model's WMOAreaTable rows.
func (c *Header) AreaTable() dbc.ForeignKey {
	return dbc.NewForeignKey(dbc.WMOAreaTable, "WMOID", c.AreaTableID)
}

// Signature implements iff.Chunk.
func (c *Header) Signature() iff.Signature {
	return SignatureHeader
}

// Unmarshal implements iff.Chunk.
func (c *Header) Unmarshal(data []byte, _ warcraft.Version) error {
	return iff.ReadFixed(SignatureHeader, data, c)
}

// Marshal implements iff.Chunk.
func (c *Header) Marshal(_ warcraft.Version) ([]byte, error) {
	return iff.WriteFixed(c)
}
