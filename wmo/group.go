package wmo

import (
	"fmt"

	"github.com/ptolstoi/warcraftassets/dbc"
	"github.com/ptolstoi/warcraftassets/iff"
	"github.com/ptolstoi/warcraftassets/warcraft"
)

// GroupHeaderSize is the size of the header at the start of the MOGP payload.
const GroupHeaderSize = 68

// GroupHeader is the fixed part of the MOGP chunk.
type GroupHeader struct {
	NameOffset            uint32
	DescriptiveNameOffset uint32
	Flags                 uint32
	BoundingBox           warcraft.Box
	PortalStart           uint16
	PortalCount           uint16
	TransparentBatchCount uint16
	InteriorBatchCount    uint16
	ExteriorBatchCount    uint16
	Unknown1              uint16
	FogIndices            [4]uint8
	LiquidType            uint32
	AreaTableGroupID      uint32
	Unknown2              uint32
	Unknown3              uint32
}

// AreaTableGroup returns the reference to the group's WMOAreaTable row.
func (h *GroupHeader) AreaTableGroup() dbc.ForeignKey {
	return dbc.NewForeignKey(dbc.WMOAreaTable, "WMOGroupID", h.AreaTableGroupID)
}

// GroupData is the MOGP chunk: a header followed by the geometry sub-chunks,
// which are kept raw.
type GroupData struct {
	Header    GroupHeader
	SubChunks []*iff.Raw
}

// Signature implements iff.Chunk.
func (c *GroupData) Signature() iff.Signature {
	return SignatureGroupData
}

// Unmarshal implements iff.Chunk.
func (c *GroupData) Unmarshal(data []byte, _ warcraft.Version) error {
	if len(data) < GroupHeaderSize {
		return fmt.Errorf("%w: %v payload is %d bytes, need at least %d",
			iff.ErrTruncatedBuffer, SignatureGroupData, len(data), GroupHeaderSize)
	}

	if err := iff.ReadFixed(SignatureGroupData, data[:GroupHeaderSize], &c.Header); err != nil {
		return err
	}

	var err error
	c.SubChunks, err = iff.Split(data[GroupHeaderSize:])
	return err
}

// Marshal implements iff.Chunk.
func (c *GroupData) Marshal(version warcraft.Version) ([]byte, error) {
	header, err := iff.WriteFixed(&c.Header)
	if err != nil {
		return nil, err
	}

	chunks := make([]iff.Chunk, len(c.SubChunks))
	for i, sc := range c.SubChunks {
		chunks[i] = sc
	}

	body, err := iff.MarshalStream(chunks, version)
	if err != nil {
		return nil, err
	}

	return append(header, body...), nil
}

// Group is a decoded group file.
type Group struct {
	chunks []iff.Chunk

	FormatVersion *iff.FormatVersion
	Data          *GroupData

	// filled in from the root's group names when the group is attached. Never serialized.
	Name            string
	DescriptiveName string
}

// DecodeGroup decodes a group file.
func DecodeGroup(data []byte, version warcraft.Version) (*Group, error) {
	if err := version.Validate(); err != nil {
		return nil, err
	}

	chunks, err := decodeStream(data, version)
	if err != nil {
		return nil, fmt.Errorf("group: %w", err)
	}

	g := &Group{chunks: chunks}
	for _, c := range chunks {
		switch tc := c.(type) {
		case *iff.FormatVersion:
			if g.FormatVersion == nil {
				g.FormatVersion = tc
			}

		case *GroupData:
			if g.Data == nil {
				g.Data = tc
			}
		}
	}

	if g.FormatVersion == nil {
		return nil, fmt.Errorf("group: %w: %v", ErrMissingChunk, iff.SignatureFormatVersion)
	}
	if g.Data == nil {
		return nil, fmt.Errorf("group: %w: %v", ErrMissingChunk, SignatureGroupData)
	}

	return g, nil
}

// Chunks returns the chunks of the group file, in file order.
func (g *Group) Chunks() []iff.Chunk {
	return append([]iff.Chunk(nil), g.chunks...)
}

// Encode serializes the group file.
func (g *Group) Encode(version warcraft.Version) ([]byte, error) {
	if err := version.Validate(); err != nil {
		return nil, err
	}
	return iff.MarshalStream(g.chunks, version)
}
