package mdx

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptolstoi/warcraftassets/dbc"
	"github.com/ptolstoi/warcraftassets/iff"
	"github.com/ptolstoi/warcraftassets/warcraft"
)

func sampleRecord() []byte {
	rec := make([]byte, AnimationSequenceSize)
	binary.LittleEndian.PutUint32(rec[0:], 4)
	binary.LittleEndian.PutUint32(rec[4:], 1000)
	binary.LittleEndian.PutUint32(rec[8:], 2333)
	binary.LittleEndian.PutUint32(rec[12:], math.Float32bits(2.5))
	binary.LittleEndian.PutUint32(rec[16:], uint32(SequenceFlagIsLoaded))
	binary.LittleEndian.PutUint16(rec[20:], 0x7FFF)
	binary.LittleEndian.PutUint16(rec[22:], 0xABCD)
	binary.LittleEndian.PutUint32(rec[60:], math.Float32bits(float32(math.NaN())))
	binary.LittleEndian.PutUint16(rec[64:], 0xFFFF)
	binary.LittleEndian.PutUint16(rec[66:], 9)
	return rec
}

func TestRecordSize(t *testing.T) {
	require.Equal(t, AnimationSequenceSize-12, binary.Size(sequenceTail{}))
}

func TestVersionPartition(t *testing.T) {
	for _, ca := range []struct {
		version warcraft.Version
		layout  warcraft.Layout
	}{
		{warcraft.Classic, LayoutTimestamps},
		{warcraft.BurningCrusade, LayoutTimestamps},
		{warcraft.Wrath, LayoutDuration},
		{warcraft.Legion, LayoutDuration},
	} {
		t.Run(ca.version.String(), func(t *testing.T) {
			var c AnimationSequences
			require.NoError(t, iff.Unmarshal(&c, SignatureAnimationSequences, sampleRecord(), ca.version))
			require.Len(t, c.Sequences, 1)

			s := c.Sequences[0]
			require.Equal(t, uint32(4), s.AnimationID)
			require.Equal(t, float32(2.5), s.MovementSpeed)
			require.Equal(t, int16(0x7FFF), s.Probability)
			require.Equal(t, uint16(0xABCD), s.Padding)
			require.Equal(t, int16(-1), s.NextVariation)
			require.Equal(t, uint16(9), s.NextAliasedAnimationID)

			if ca.layout == LayoutTimestamps {
				require.Equal(t, uint32(1000), s.StartTimestamp)
				require.Equal(t, uint32(2333), s.EndTimestamp)
				require.Zero(t, s.Duration)
				require.Zero(t, s.DurationReserved)
			} else {
				require.Equal(t, uint32(1000), s.Duration)
				require.Equal(t, uint32(2333), s.DurationReserved)
				require.Zero(t, s.StartTimestamp)
				require.Zero(t, s.EndTimestamp)
			}
		})
	}
}

func TestByteFidelity(t *testing.T) {
	data := append(sampleRecord(), sampleRecord()...)
	data[68] = 5

	for v := warcraft.Classic; v <= warcraft.Latest; v++ {
		var c AnimationSequences
		require.NoError(t, c.Unmarshal(data, v))

		out, err := c.Marshal(v)
		require.NoError(t, err)
		require.Equal(t, data, out)
	}
}

func TestRoundTrip(t *testing.T) {
	for v := warcraft.Classic; v <= warcraft.Latest; v++ {
		s := AnimationSequence{
			AnimationID:          143,
			MovementSpeed:        7.25,
			Flags:                SequenceFlagIsBlended,
			Probability:          100,
			ReplayRange:          warcraft.Range{Min: 1, Max: 3},
			BlendTime:            150,
			BoundingSphereRadius: 4,
			NextVariation:        -1,
		}
		if layout, _ := TimingGate.LayoutFor(v); layout == LayoutTimestamps {
			s.StartTimestamp, s.EndTimestamp = 3333, 4999
		} else {
			s.Duration = 1666
		}

		c := AnimationSequences{Sequences: []AnimationSequence{s}}
		out, err := c.Marshal(v)
		require.NoError(t, err)

		var dec AnimationSequences
		require.NoError(t, dec.Unmarshal(out, v))
		require.Equal(t, c, dec)
	}
}

func TestLegacyFieldsNotWrittenByModernLayout(t *testing.T) {
	c := AnimationSequences{Sequences: []AnimationSequence{{
		StartTimestamp: 10,
		EndTimestamp:   20,
		Duration:       30,
	}}}

	out, err := c.Marshal(warcraft.Wrath)
	require.NoError(t, err)
	require.Equal(t, uint32(30), binary.LittleEndian.Uint32(out[4:]))
	require.Equal(t, uint32(0), binary.LittleEndian.Uint32(out[8:]))

	out, err = c.Marshal(warcraft.Classic)
	require.NoError(t, err)
	require.Equal(t, uint32(10), binary.LittleEndian.Uint32(out[4:]))
	require.Equal(t, uint32(20), binary.LittleEndian.Uint32(out[8:]))
}

func TestUnsupportedVersion(t *testing.T) {
	var c AnimationSequences
	err := c.Unmarshal(sampleRecord(), warcraft.Unknown)
	require.ErrorIs(t, err, warcraft.ErrUnsupportedVersion)

	_, err = c.Marshal(warcraft.Latest + 1)
	require.ErrorIs(t, err, warcraft.ErrUnsupportedVersion)
}

func TestTruncated(t *testing.T) {
	var c AnimationSequences
	err := c.Unmarshal(sampleRecord()[:67], warcraft.Wrath)
	require.ErrorIs(t, err, iff.ErrTruncatedBuffer)
}

func TestAnimationKey(t *testing.T) {
	s := AnimationSequence{AnimationID: 4}
	require.Equal(t, dbc.NewForeignKey(dbc.AnimationData, dbc.FieldID, 4), s.Animation())
}
