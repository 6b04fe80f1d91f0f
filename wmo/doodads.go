package wmo

import (
	"bytes"

	"github.com/ptolstoi/warcraftassets/iff"
	"github.com/ptolstoi/warcraftassets/warcraft"
)

// DoodadFlags are the flags of a doodad instance.
type DoodadFlags uint8

// Doodad flags.
const (
	DoodadFlagAcceptProjectedTexture DoodadFlags = 0x1
	DoodadFlagUseInteriorLighting    DoodadFlags = 0x2
	DoodadFlagUnknown1               DoodadFlags = 0x4
	DoodadFlagUnknown2               DoodadFlags = 0x8
)

// DoodadRecord is the stored part of a doodad instance.
// The name offset and the flags share the first field.
type DoodadRecord struct {
	NameOffsetAndFlags uint32
	Position           warcraft.Vector3
	Orientation        warcraft.Quaternion
	Scale              float32
	Colour             warcraft.BGRA
}

// NameOffset returns the offset of the doodad's model path in DoodadNames.
func (r DoodadRecord) NameOffset() uint32 {
	return r.NameOffsetAndFlags & 0x00FFFFFF
}

// Flags returns the flags of the doodad.
func (r DoodadRecord) Flags() DoodadFlags {
	return DoodadFlags(r.NameOffsetAndFlags >> 24)
}

// DoodadInstance is a placed doodad.
type DoodadInstance struct {
	DoodadRecord

	// model path filled in by Model.ResolveReferences. Empty if the offset does not resolve.
	Name string
}

// DoodadInstances is the MODD chunk.
type DoodadInstances struct {
	Instances []*DoodadInstance
}

// Signature implements iff.Chunk.
func (c *DoodadInstances) Signature() iff.Signature {
	return SignatureDoodadInstances
}

// Unmarshal implements iff.Chunk.
func (c *DoodadInstances) Unmarshal(data []byte, _ warcraft.Version) error {
	records, err := iff.ReadElements[DoodadRecord](SignatureDoodadInstances, data)
	if err != nil {
		return err
	}

	c.Instances = make([]*DoodadInstance, len(records))
	for i, rec := range records {
		c.Instances[i] = &DoodadInstance{DoodadRecord: rec}
	}
	return nil
}

// Marshal implements iff.Chunk.
func (c *DoodadInstances) Marshal(_ warcraft.Version) ([]byte, error) {
	records := make([]DoodadRecord, len(c.Instances))
	for i, d := range c.Instances {
		records[i] = d.DoodadRecord
	}
	return iff.WriteElements(records)
}

// DoodadSet is a named range of doodad instances.
type DoodadSet struct {
	RawName       [20]byte
	FirstInstance uint32
	InstanceCount uint32
	Unused        uint32
}

// Name returns the set name up to the first null byte.
func (s DoodadSet) Name() string {
	if i := bytes.IndexByte(s.RawName[:], 0); i >= 0 {
		return string(s.RawName[:i])
	}
	return string(s.RawName[:])
}

// DoodadSets is the MODS chunk.
type DoodadSets struct {
	Sets []DoodadSet
}

// Signature implements iff.Chunk.
func (c *DoodadSets) Signature() iff.Signature {
	return SignatureDoodadSets
}

// Unmarshal implements iff.Chunk.
func (c *DoodadSets) Unmarshal(data []byte, _ warcraft.Version) error {
	var err error
	c.Sets, err = iff.ReadElements[DoodadSet](SignatureDoodadSets, data)
	return err
}

// Marshal implements iff.Chunk.
func (c *DoodadSets) Marshal(_ warcraft.Version) ([]byte, error) {
	return iff.WriteElements(c.Sets)
}
