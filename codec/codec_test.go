package codec

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptolstoi/warcraftassets/iff"
	"github.com/ptolstoi/warcraftassets/internal/testutil"
	"github.com/ptolstoi/warcraftassets/mdx"
	"github.com/ptolstoi/warcraftassets/warcraft"
	"github.com/ptolstoi/warcraftassets/wdl"
	"github.com/ptolstoi/warcraftassets/wmo"
)

func pattern(n int) []byte {
	byts := make([]byte, n)
	for i := range byts {
		byts[i] = byte(i * 7)
	}
	return byts
}

var casesChunks = []struct {
	name string
	sig  iff.Signature
	byts []byte
}{
	{"version", iff.SignatureFormatVersion, []byte{17, 0, 0, 0}},
	{"header", wmo.SignatureHeader, pattern(wmo.HeaderSize)},
	{"textures", wmo.SignatureTextures, []byte(testutil.SampleTextures)},
	{"materials", wmo.SignatureMaterials, pattern(3 * wmo.MaterialSize)},
	{"group names", wmo.SignatureGroupNames, []byte(testutil.SampleGroupNames)},
	{"group information", wmo.SignatureGroupInformation, pattern(2 * 32)},
	{"doodad sets", wmo.SignatureDoodadSets, pattern(32)},
	{"doodad names", wmo.SignatureDoodadNames, []byte(testutil.SampleDoodadNames)},
	{"doodad instances", wmo.SignatureDoodadInstances, pattern(4 * 40)},
	{"group data", wmo.SignatureGroupData, append(pattern(wmo.GroupHeaderSize),
		'Y', 'P', 'O', 'M', 2, 0, 0, 0, 0xAA, 0xBB)},
	{"map area offsets", wdl.SignatureMapAreaOffsets, pattern(wdl.MapAreaOffsetsSize)},
	{"map area", wdl.SignatureMapArea, pattern(wdl.MapAreaSize)},
	{"map area holes", wdl.SignatureMapAreaHoles, pattern(wdl.MapAreaHolesSize)},
	{"animation sequences", mdx.SignatureAnimationSequences, pattern(2 * mdx.AnimationSequenceSize)},
}

func TestByteFidelity(t *testing.T) {
	for _, ca := range casesChunks {
		t.Run(ca.name, func(t *testing.T) {
			for v := warcraft.Classic; v <= warcraft.Latest; v++ {
				c, err := Decode(ca.sig, ca.byts, v)
				require.NoError(t, err)
				require.Equal(t, ca.sig, c.Signature())

				out, err := Encode(c, v)
				require.NoError(t, err)
				require.Equal(t, ca.byts, out)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, ca := range casesChunks {
		t.Run(ca.name, func(t *testing.T) {
			for v := warcraft.Classic; v <= warcraft.Latest; v++ {
				x, err := Decode(ca.sig, ca.byts, v)
				require.NoError(t, err)
				if hasNaN(x) {
					continue
				}

				out, err := Encode(x, v)
				require.NoError(t, err)

				y, err := Decode(ca.sig, out, v)
				require.NoError(t, err)
				require.Equal(t, x, y)
			}
		})
	}
}

// hasNaN reports whether a decoded pattern produced NaN floats, which never compare equal.
func hasNaN(c iff.Chunk) bool {
	out, _ := c.Marshal(warcraft.Classic)
	for i := 0; i+4 <= len(out); i += 4 {
		if math.IsNaN(float64(math.Float32frombits(binary.LittleEndian.Uint32(out[i:])))) {
			return true
		}
	}
	return false
}

func TestAllocateChunk(t *testing.T) {
	for _, ca := range casesChunks {
		t.Run(ca.name, func(t *testing.T) {
			c, err := allocateChunk(ca.sig)
			require.NoError(t, err)
			require.Equal(t, ca.sig, c.Signature())
		})
	}

	for _, ca := range []struct {
		name string
		sig  iff.Signature
	}{
		{"unregistered", 'M'<<24 | 'O'<<16 | 'P'<<8 | 'V'},
		{"reversed", 'R'<<24 | 'E'<<16 | 'V'<<8 | 'M'},
		{"zero", 0},
	} {
		t.Run(ca.name, func(t *testing.T) {
			_, err := allocateChunk(ca.sig)
			require.ErrorIs(t, err, iff.ErrMalformedSignature)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode('M'<<24|'O'<<16|'P'<<8|'V', []byte{}, warcraft.Wrath)
	require.ErrorIs(t, err, iff.ErrMalformedSignature)

	_, err = Decode(wdl.SignatureMapArea, make([]byte, 1089), warcraft.Wrath)
	require.ErrorIs(t, err, iff.ErrTruncatedBuffer)

	_, err = Decode(wdl.SignatureMapArea, make([]byte, 1091), warcraft.Wrath)
	require.ErrorIs(t, err, iff.ErrTruncatedBuffer)

	_, err = Decode(wmo.SignatureMaterials, make([]byte, 65), warcraft.Wrath)
	require.ErrorIs(t, err, iff.ErrTruncatedBuffer)

	_, err = Decode(wmo.SignatureMaterials, make([]byte, 64), warcraft.Unknown)
	require.ErrorIs(t, err, warcraft.ErrUnsupportedVersion)

	_, err = Encode(&wmo.Materials{}, warcraft.Latest+1)
	require.ErrorIs(t, err, warcraft.ErrUnsupportedVersion)
}
