package wmo

import (
	"fmt"

	"github.com/ptolstoi/warcraftassets/iff"
	"github.com/ptolstoi/warcraftassets/warcraft"
)

// Root is a decoded root file.
// Chunks without a registered type are kept raw so that Encode reproduces the file.
type Root struct {
	chunks []iff.Chunk

	FormatVersion    *iff.FormatVersion
	Header           *Header
	Textures         *Textures
	Materials        *Materials
	GroupNames       *GroupNames
	GroupInformation *GroupInformation

	// optional; empty when absent from the file.
	DoodadSets      *DoodadSets
	DoodadNames     *DoodadNames
	DoodadInstances *DoodadInstances
}

// DecodeRoot decodes a root file.
func DecodeRoot(data []byte, version warcraft.Version) (*Root, error) {
	if err := version.Validate(); err != nil {
		return nil, err
	}

	chunks, err := decodeStream(data, version)
	if err != nil {
		return nil, fmt.Errorf("root: %w", err)
	}

	r := &Root{chunks: chunks}
	for _, c := range chunks {
		r.assign(c)
	}

	for _, req := range []struct {
		sig     iff.Signature
		missing bool
	}{
		{iff.SignatureFormatVersion, r.FormatVersion == nil},
		{SignatureHeader, r.Header == nil},
		{SignatureTextures, r.Textures == nil},
		{SignatureMaterials, r.Materials == nil},
		{SignatureGroupNames, r.GroupNames == nil},
		{SignatureGroupInformation, r.GroupInformation == nil},
	} {
		if req.missing {
			return nil, fmt.Errorf("root: %w: %v", ErrMissingChunk, req.sig)
		}
	}

	if r.DoodadSets == nil {
		r.DoodadSets = &DoodadSets{}
	}
	if r.DoodadNames == nil {
		r.DoodadNames = &DoodadNames{}
	}
	if r.DoodadInstances == nil {
		r.DoodadInstances = &DoodadInstances{}
	}

	return r, nil
}

// assign keeps the first chunk of each type; later duplicates stay in the stream only.
func (r *Root) assign(c iff.Chunk) {
	switch tc := c.(type) {
	case *iff.FormatVersion:
		if r.FormatVersion == nil {
			r.FormatVersion = tc
		}

	case *Header:
		if r.Header == nil {
			r.Header = tc
		}

	case *Textures:
		if r.Textures == nil {
			r.Textures = tc
		}

	case *Materials:
		if r.Materials == nil {
			r.Materials = tc
		}

	case *GroupNames:
		if r.GroupNames == nil {
			r.GroupNames = tc
		}

	case *GroupInformation:
		if r.GroupInformation == nil {
			r.GroupInformation = tc
		}

	case *DoodadSets:
		if r.DoodadSets == nil {
			r.DoodadSets = tc
		}

	case *DoodadNames:
		if r.DoodadNames == nil {
			r.DoodadNames = tc
		}

	case *DoodadInstances:
		if r.DoodadInstances == nil {
			r.DoodadInstances = tc
		}
	}
}

// Chunks returns the chunks of the root file, in file order.
func (r *Root) Chunks() []iff.Chunk {
	return append([]iff.Chunk(nil), r.chunks...)
}

// Encode serializes the root file.
func (r *Root) Encode(version warcraft.Version) ([]byte, error) {
	if err := version.Validate(); err != nil {
		return nil, err
	}
	return iff.MarshalStream(r.chunks, version)
}

// Owns checks that the root declares g: the group's name offset must be an
// entry of the group name table and must be listed by the group information.
func (r *Root) Owns(g *Group) error {
	off := g.Data.Header.NameOffset

	if _, ok := r.GroupNames.Table().Lookup(off); !ok {
		return fmt.Errorf("%w: name offset %d is not an entry of %v", ErrGroupNotOwned, off, SignatureGroupNames)
	}

	if !r.GroupInformation.lists(off) {
		return fmt.Errorf("%w: no %v record has name offset %d", ErrGroupNotOwned, SignatureGroupInformation, off)
	}

	return nil
}

// GroupName returns the internal name of g. It is empty if the name does not resolve.
func (r *Root) GroupName(g *Group) string {
	s, _ := r.GroupNames.Table().Lookup(g.Data.Header.NameOffset)
	return s
}

// DescriptiveGroupName returns the descriptive name of g. It is empty if the name does not resolve.
func (r *Root) DescriptiveGroupName(g *Group) string {
	s, _ := r.GroupNames.Table().Lookup(g.Data.Header.DescriptiveNameOffset)
	return s
}
