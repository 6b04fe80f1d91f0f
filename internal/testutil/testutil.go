// Package testutil builds container files for tests.
package testutil

import (
	"bytes"
	"encoding/binary"

	"github.com/ptolstoi/warcraftassets/blp"
	"github.com/ptolstoi/warcraftassets/iff"
	"github.com/ptolstoi/warcraftassets/warcraft"
	"github.com/ptolstoi/warcraftassets/wmo"
)

// Texture table of the sample root: "a.blp" at 0, "b.blp" at 8, padding in between.
const SampleTextures = "a.blp\x00\x00\x00b.blp\x00\x00\x00"

// Group name table of the sample root:
// "entrance" at 2, "Entrance Hall" at 11, "cellar" at 25.
const SampleGroupNames = "\x00\x00entrance\x00Entrance Hall\x00cellar\x00"

// Doodad name table of the sample root: "chair.m2" at 0, "table.m2" at 9.
const SampleDoodadNames = "chair.m2\x00table.m2\x00"

// Name offsets of the groups declared by the sample root.
const (
	SampleEntranceOffset    = 2
	SampleDescriptiveOffset = 11
	SampleCellarOffset      = 25
)

// Chunk appends a chunk header and payload to buf.
func Chunk(buf *bytes.Buffer, sig iff.Signature, payload []byte) {
	binary.Write(buf, binary.LittleEndian, iff.Header{ //nolint:errcheck
		Signature: sig,
		Size:      uint32(len(payload)),
	})
	buf.Write(payload)
}

// Encode encodes fixed-size values back to back.
func Encode(vs ...interface{}) []byte {
	var buf bytes.Buffer
	for _, v := range vs {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			panic(err)
		}
	}
	return buf.Bytes()
}

// SampleMaterials are the materials of the sample root.
// The second one references a texture offset that does not resolve.
func SampleMaterials() []wmo.MaterialRecord {
	return []wmo.MaterialRecord{
		{
			Flags:               wmo.MaterialFlagTwoSided,
			Shader:              1,
			BlendMode:           2,
			FirstTextureOffset:  0,
			FirstColour:         warcraft.BGRA{B: 1, G: 2, R: 3, A: 255},
			SecondTextureOffset: 8,
			GroundTypeID:        3,
			ThirdTextureOffset:  0,
			RuntimeData:         [4]uint32{0xDEADBEEF, 1, 2, 3},
		},
		{
			FirstTextureOffset:  100,
			SecondTextureOffset: 3,
			GroundTypeID:        7,
			ThirdTextureOffset:  8,
			RuntimeData:         [4]uint32{0, 0, 0, 0xCAFEBABE},
		},
	}
}

// SampleRoot returns a root file declaring two groups, with an unregistered
// MOPV chunk between the known ones.
func SampleRoot() []byte {
	var buf bytes.Buffer

	Chunk(&buf, iff.SignatureFormatVersion, Encode(uint32(17)))
	Chunk(&buf, wmo.SignatureHeader, Encode(&wmo.Header{
		TextureCount:        2,
		GroupCount:          2,
		DoodadNameCount:     2,
		DoodadInstanceCount: 2,
		AmbientColour:       warcraft.BGRA{B: 10, G: 20, R: 30, A: 40},
		AreaTableID:         341,
		BoundingBox: warcraft.Box{
			Min: warcraft.Vector3{X: -1, Y: -2, Z: -3},
			Max: warcraft.Vector3{X: 1, Y: 2, Z: 3},
		},
		Flags: wmo.RootFlagLightenInteriors,
	}))
	Chunk(&buf, wmo.SignatureTextures, []byte(SampleTextures))
	Chunk(&buf, wmo.SignatureMaterials, Encode(SampleMaterials()))
	Chunk(&buf, wmo.SignatureGroupNames, []byte(SampleGroupNames))
	Chunk(&buf, wmo.SignatureGroupInformation, Encode([]wmo.GroupInfo{
		{Flags: 0x8, NameOffset: SampleEntranceOffset},
		{Flags: 0x2000, NameOffset: SampleCellarOffset},
	}))
	Chunk(&buf, 'M'<<24|'O'<<16|'P'<<8|'V', []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	Chunk(&buf, wmo.SignatureDoodadNames, []byte(SampleDoodadNames))
	Chunk(&buf, wmo.SignatureDoodadInstances, Encode([]wmo.DoodadRecord{
		{NameOffsetAndFlags: 0x01000009, Scale: 1},
		{NameOffsetAndFlags: 50, Scale: 0.5},
	}))

	return buf.Bytes()
}

// SampleGroup returns a group file with the given name offsets.
func SampleGroup(nameOffset uint32, descriptiveNameOffset uint32) []byte {
	var body bytes.Buffer
	body.Write(Encode(&wmo.GroupHeader{
		NameOffset:            nameOffset,
		DescriptiveNameOffset: descriptiveNameOffset,
		Flags:                 0x8,
		FogIndices:            [4]uint8{1, 0, 0, 0},
		AreaTableGroupID:      4100,
		Unknown3:              0xFFFFFFFF,
	}))
	Chunk(&body, 'M'<<24|'O'<<16|'P'<<8|'Y', []byte{0x20, 0x01})
	Chunk(&body, 'M'<<24|'O'<<16|'V'<<8|'T', Encode(warcraft.Vector3{X: 1, Y: 2, Z: 3}))

	var buf bytes.Buffer
	Chunk(&buf, iff.SignatureFormatVersion, Encode(uint32(17)))
	Chunk(&buf, wmo.SignatureGroupData, body.Bytes())
	return buf.Bytes()
}

// SampleTexture returns a 4x4 DXT1 texture. Every pixel is opaque red but the
// last one, which is opaque blue.
func SampleTexture() []byte {
	h := blp.Header{
		Type:        1,
		Compression: blp.CompressionDXT,
		AlphaType:   blp.AlphaTypeDXT1,
		Width:       4,
		Height:      4,
	}
	copy(h.Magic[:], blp.Magic)
	h.MipOffsets[0] = blp.HeaderSize
	h.MipSizes[0] = 8

	return Encode(&h, uint16(0xF800), uint16(0x001F), uint32(1<<30))
}
