// Package wdl reads and writes world LOD files, the low resolution terrain
// shown for distant map tiles.
package wdl

import (
	"fmt"

	"github.com/ptolstoi/warcraftassets/iff"
	"github.com/ptolstoi/warcraftassets/warcraft"
)

// Chunk tags.
const (
	SignatureMapAreaOffsets iff.Signature = 'M'<<24 | 'A'<<16 | 'O'<<8 | 'F'
	SignatureMapArea        iff.Signature = 'M'<<24 | 'A'<<16 | 'R'<<8 | 'E'
	SignatureMapAreaHoles   iff.Signature = 'M'<<24 | 'A'<<16 | 'H'<<8 | 'O'
)

// NewChunk allocates the chunk registered under sig.
// It returns nil for tags that are kept as raw chunks.
func NewChunk(sig iff.Signature) iff.Chunk {
	switch sig {
	case iff.SignatureFormatVersion:
		return &iff.FormatVersion{}

	case SignatureMapAreaOffsets:
		return &MapAreaOffsets{}

	case SignatureMapArea:
		return &MapArea{}

	case SignatureMapAreaHoles:
		return &MapAreaHoles{}
	}

	return nil
}

// File is a decoded WDL file.
type File struct {
	chunks []iff.Chunk

	FormatVersion *iff.FormatVersion
	Offsets       *MapAreaOffsets
	Areas         []*MapArea
	Holes         []*MapAreaHoles
}

// Decode decodes a WDL file. Areas and holes are listed in file order.
func Decode(data []byte, version warcraft.Version) (*File, error) {
	if err := version.Validate(); err != nil {
		return nil, err
	}

	raws, err := iff.Split(data)
	if err != nil {
		return nil, fmt.Errorf("wdl: %w", err)
	}

	f := &File{chunks: make([]iff.Chunk, len(raws))}
	for i, raw := range raws {
		c := NewChunk(raw.Tag)
		if c == nil {
			f.chunks[i] = raw
			continue
		}

		if err := iff.Unmarshal(c, raw.Tag, raw.Data, version); err != nil {
			return nil, fmt.Errorf("wdl: %w", err)
		}
		f.chunks[i] = c

		switch tc := c.(type) {
		case *iff.FormatVersion:
			f.FormatVersion = tc

		case *MapAreaOffsets:
			f.Offsets = tc

		case *MapArea:
			f.Areas = append(f.Areas, tc)

		case *MapAreaHoles:
			f.Holes = append(f.Holes, tc)
		}
	}

	if f.FormatVersion == nil {
		return nil, fmt.Errorf("wdl: missing %v chunk", iff.SignatureFormatVersion)
	}

	return f, nil
}

// Encode serializes the file.
func (f *File) Encode(version warcraft.Version) ([]byte, error) {
	if err := version.Validate(); err != nil {
		return nil, err
	}
	return iff.MarshalStream(f.chunks, version)
}
