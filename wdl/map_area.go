package wdl

import (
	"github.com/ptolstoi/warcraftassets/iff"
	"github.com/ptolstoi/warcraftassets/warcraft"
)

// Grid dimensions.
const (
	HighResSide = 17
	LowResSide  = 16

	// MapAreaSize is the size of the MARE payload.
	MapAreaSize = HighResSide*HighResSide*2 + LowResSide*LowResSide*2

	// MapAreaOffsetsSize is the size of the MAOF payload.
	MapAreaOffsetsSize = 64 * 64 * 4

	// MapAreaHolesSize is the size of the MAHO payload.
	MapAreaHolesSize = 16 * 2
)

// GridOrder is the memory order of the height grids.
type GridOrder int

// Grid orders.
const (
	RowMajor GridOrder = iota
	ColumnMajor
)

// HeightGridOrder is the order assumed for MapArea samples: y selects the row.
// It has not been verified against the client and is not the order used by
// the ADT height maps; change it here if it turns out to be wrong.
const HeightGridOrder = RowMajor

func gridIndex(side int, x int, y int) int {
	if HeightGridOrder == ColumnMajor {
		return x*side + y
	}
	return y*side + x
}

// MapArea is the MARE chunk: 17x17 outer and 16x16 inner height samples of a map tile.
type MapArea struct {
	HighResVertices [HighResSide * HighResSide]int16
	LowResVertices  [LowResSide * LowResSide]int16
}

// HighRes returns the outer sample at (x, y), both in [0, 17).
func (c *MapArea) HighRes(x int, y int) int16 {
	return c.HighResVertices[gridIndex(HighResSide, x, y)]
}

// LowRes returns the inner sample at (x, y), both in [0, 16).
func (c *MapArea) LowRes(x int, y int) int16 {
	return c.LowResVertices[gridIndex(LowResSide, x, y)]
}

// HeightRange returns the lowest and highest sample of both grids.
func (c *MapArea) HeightRange() (int16, int16) {
	lo, hi := c.HighResVertices[0], c.HighResVertices[0]
	check := func(v int16) {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	for _, v := range c.HighResVertices {
		check(v)
	}
	for _, v := range c.LowResVertices {
		check(v)
	}
	return lo, hi
}

// Signature implements iff.Chunk.
func (c *MapArea) Signature() iff.Signature {
	return SignatureMapArea
}

// Unmarshal implements iff.Chunk.
func (c *MapArea) Unmarshal(data []byte, _ warcraft.Version) error {
	return iff.ReadFixed(SignatureMapArea, data, c)
}

// Marshal implements iff.Chunk.
func (c *MapArea) Marshal(_ warcraft.Version) ([]byte, error) {
	return iff.WriteFixed(c)
}

// MapAreaOffsets is the MAOF chunk: for each of the 64x64 map tiles, the file
// offset of its MARE chunk, or zero.
type MapAreaOffsets struct {
	Offsets [64 * 64]uint32
}

// Signature implements iff.Chunk.
func (c *MapAreaOffsets) Signature() iff.Signature {
	return SignatureMapAreaOffsets
}

// Unmarshal implements iff.Chunk.
func (c *MapAreaOffsets) Unmarshal(data []byte, _ warcraft.Version) error {
	return iff.ReadFixed(SignatureMapAreaOffsets, data, c)
}

// Marshal implements iff.Chunk.
func (c *MapAreaOffsets) Marshal(_ warcraft.Version) ([]byte, error) {
	return iff.WriteFixed(c)
}

// MapAreaHoles is the MAHO chunk: a 16-bit hole mask per row of a map tile.
type MapAreaHoles struct {
	Rows [16]uint16
}

// Signature implements iff.Chunk.
func (c *MapAreaHoles) Signature() iff.Signature {
	return SignatureMapAreaHoles
}

// Unmarshal implements iff.Chunk.
func (c *MapAreaHoles) Unmarshal(data []byte, _ warcraft.Version) error {
	return iff.ReadFixed(SignatureMapAreaHoles, data, c)
}

// Marshal implements iff.Chunk.
func (c *MapAreaHoles) Marshal(_ warcraft.Version) ([]byte, error) {
	return iff.WriteFixed(c)
}
