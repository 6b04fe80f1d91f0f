// Package codec decodes and encodes single chunks of any supported container,
// dispatching on the chunk signature.
package codec

import (
	"fmt"

	"github.com/ptolstoi/warcraftassets/iff"
	"github.com/ptolstoi/warcraftassets/mdx"
	"github.com/ptolstoi/warcraftassets/warcraft"
	"github.com/ptolstoi/warcraftassets/wdl"
	"github.com/ptolstoi/warcraftassets/wmo"
)

// allocators are the chunk constructors of every supported container.
var allocators = []func(iff.Signature) iff.Chunk{
	wmo.NewChunk,
	wdl.NewChunk,
	mdx.NewChunk,
}

func allocateChunk(sig iff.Signature) (iff.Chunk, error) {
	for _, allocate := range allocators {
		if c := allocate(sig); c != nil {
			return c, nil
		}
	}

	return nil, fmt.Errorf("%w: no chunk is registered for '%v'", iff.ErrMalformedSignature, sig)
}

// Decode decodes the payload of a chunk tagged sig.
func Decode(sig iff.Signature, data []byte, version warcraft.Version) (iff.Chunk, error) {
	if err := version.Validate(); err != nil {
		return nil, err
	}

	c, err := allocateChunk(sig)
	if err != nil {
		return nil, err
	}

	if err := iff.Unmarshal(c, sig, data, version); err != nil {
		return nil, err
	}

	return c, nil
}

// Encode encodes the payload of c. version must be the one c was decoded with
// for the output to match the original bytes.
func Encode(c iff.Chunk, version warcraft.Version) ([]byte, error) {
	if err := version.Validate(); err != nil {
		return nil, err
	}
	return c.Marshal(version)
}
