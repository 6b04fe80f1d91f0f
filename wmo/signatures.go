// Package wmo reads and writes world model objects: a root file that declares
// materials, textures, doodads and groups, plus one file per group.
package wmo

import (
	"github.com/ptolstoi/warcraftassets/iff"
	"github.com/ptolstoi/warcraftassets/warcraft"
)

// Chunk tags.
const (
	SignatureHeader           iff.Signature = 'M'<<24 | 'O'<<16 | 'H'<<8 | 'D'
	SignatureTextures         iff.Signature = 'M'<<24 | 'O'<<16 | 'T'<<8 | 'X'
	SignatureMaterials        iff.Signature = 'M'<<24 | 'O'<<16 | 'M'<<8 | 'T'
	SignatureGroupNames       iff.Signature = 'M'<<24 | 'O'<<16 | 'G'<<8 | 'N'
	SignatureGroupInformation iff.Signature = 'M'<<24 | 'O'<<16 | 'G'<<8 | 'I'
	SignatureDoodadSets       iff.Signature = 'M'<<24 | 'O'<<16 | 'D'<<8 | 'S'
	SignatureDoodadNames      iff.Signature = 'M'<<24 | 'O'<<16 | 'D'<<8 | 'N'
	SignatureDoodadInstances  iff.Signature = 'M'<<24 | 'O'<<16 | 'D'<<8 | 'D'
	SignatureGroupData        iff.Signature = 'M'<<24 | 'O'<<16 | 'G'<<8 | 'P'
)

// NewChunk allocates the chunk registered under sig.
// It returns nil for tags that are kept as raw chunks.
func NewChunk(sig iff.Signature) iff.Chunk {
	switch sig {
	case iff.SignatureFormatVersion:
		return &iff.FormatVersion{}

	case SignatureHeader:
		return &Header{}

	case SignatureTextures:
		return &Textures{}

	case SignatureMaterials:
		return &Materials{}

	case SignatureGroupNames:
		return &GroupNames{}

	case SignatureGroupInformation:
		return &GroupInformation{}

	case SignatureDoodadSets:
		return &DoodadSets{}

	case SignatureDoodadNames:
		return &DoodadNames{}

	case SignatureDoodadInstances:
		return &DoodadInstances{}

	case SignatureGroupData:
		return &GroupData{}
	}

	return nil
}

func decodeStream(data []byte, version warcraft.Version) ([]iff.Chunk, error) {
	raws, err := iff.Split(data)
	if err != nil {
		return nil, err
	}

	chunks := make([]iff.Chunk, len(raws))
	for i, raw := range raws {
		c := NewChunk(raw.Tag)
		if c == nil {
			chunks[i] = raw
			continue
		}

		if err := iff.Unmarshal(c, raw.Tag, raw.Data, version); err != nil {
			return nil, err
		}
		chunks[i] = c
	}

	return chunks, nil
}
