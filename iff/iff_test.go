package iff

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptolstoi/warcraftassets/warcraft"
)

func TestParseSignature(t *testing.T) {
	sig, err := ParseSignature("MVER")
	require.NoError(t, err)
	require.Equal(t, SignatureFormatVersion, sig)
	require.Equal(t, "MVER", sig.String())

	sig, err = ParseSignature("\x00\x01AB")
	require.NoError(t, err)
	require.Equal(t, "\x00\x01AB", sig.String())

	for _, s := range []string{"", "MVE", "MVERS"} {
		_, err = ParseSignature(s)
		require.ErrorIs(t, err, ErrMalformedSignature)
	}
}

var casesStream = []struct {
	name   string
	byts   []byte
	chunks []*Raw
}{
	{
		"empty",
		[]byte{},
		nil,
	},
	{
		"version",
		[]byte{
			'R', 'E', 'V', 'M', 0x04, 0x00, 0x00, 0x00,
			0x11, 0x00, 0x00, 0x00,
		},
		[]*Raw{{Tag: SignatureFormatVersion, Data: []byte{0x11, 0x00, 0x00, 0x00}}},
	},
	{
		"two chunks",
		[]byte{
			'R', 'E', 'V', 'M', 0x04, 0x00, 0x00, 0x00,
			0x11, 0x00, 0x00, 0x00,
			'X', 'T', 'O', 'M', 0x00, 0x00, 0x00, 0x00,
		},
		[]*Raw{
			{Tag: SignatureFormatVersion, Data: []byte{0x11, 0x00, 0x00, 0x00}},
			{Tag: 'M'<<24 | 'O'<<16 | 'T'<<8 | 'X', Data: []byte{}},
		},
	},
}

func TestSplit(t *testing.T) {
	for _, ca := range casesStream {
		t.Run(ca.name, func(t *testing.T) {
			chunks, err := Split(ca.byts)
			require.NoError(t, err)
			require.Equal(t, ca.chunks, chunks)
		})
	}
}

func TestMarshalStream(t *testing.T) {
	for _, ca := range casesStream {
		t.Run(ca.name, func(t *testing.T) {
			chunks := make([]Chunk, len(ca.chunks))
			for i, c := range ca.chunks {
				chunks[i] = c
			}

			byts, err := MarshalStream(chunks, warcraft.Wrath)
			require.NoError(t, err)
			require.Equal(t, ca.byts, append([]byte{}, byts...))
		})
	}
}

func TestSplitTruncated(t *testing.T) {
	for _, ca := range []struct {
		name string
		byts []byte
	}{
		{"short header", []byte{'R', 'E', 'V', 'M', 0x04}},
		{"short payload", []byte{'R', 'E', 'V', 'M', 0x04, 0x00, 0x00, 0x00, 0x11}},
	} {
		t.Run(ca.name, func(t *testing.T) {
			_, err := Split(ca.byts)
			require.ErrorIs(t, err, ErrTruncatedBuffer)
		})
	}
}

func TestUnmarshalSignatureMismatch(t *testing.T) {
	var c FormatVersion
	err := Unmarshal(&c, 'M'<<24|'O'<<16|'H'<<8|'D', []byte{1, 0, 0, 0}, warcraft.Classic)
	require.ErrorIs(t, err, ErrMalformedSignature)

	err = Unmarshal(&c, SignatureFormatVersion, []byte{1, 0, 0}, warcraft.Classic)
	require.ErrorIs(t, err, ErrTruncatedBuffer)

	err = Unmarshal(&c, SignatureFormatVersion, []byte{17, 0, 0, 0}, warcraft.Classic)
	require.NoError(t, err)
	require.Equal(t, uint32(17), c.Value)
}

func TestElementCount(t *testing.T) {
	n, err := ElementCount(SignatureFormatVersion, make([]byte, 128), 64)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = ElementCount(SignatureFormatVersion, make([]byte, 65), 64)
	require.ErrorIs(t, err, ErrTruncatedBuffer)
}

func TestRawCopies(t *testing.T) {
	data := []byte{1, 2, 3}
	c := &Raw{Tag: SignatureFormatVersion}
	require.NoError(t, c.Unmarshal(data, warcraft.Classic))
	data[0] = 9

	byts, err := c.Marshal(warcraft.Classic)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, byts)
}
