// Package mdx contains the chunks of animated models.
package mdx

import (
	"bytes"
	"encoding/binary"

	"github.com/ptolstoi/warcraftassets/dbc"
	"github.com/ptolstoi/warcraftassets/iff"
	"github.com/ptolstoi/warcraftassets/warcraft"
)

// SignatureAnimationSequences is the tag of the animation sequence chunk.
const SignatureAnimationSequences iff.Signature = 'S'<<24 | 'E'<<16 | 'Q'<<8 | 'S'

// AnimationSequenceSize is the size of an animation sequence record, for every version.
const AnimationSequenceSize = 68

// Timing layouts of an animation sequence.
const (
	// LayoutTimestamps stores a start and an end timestamp.
	LayoutTimestamps warcraft.Layout = iota

	// LayoutDuration stores a duration followed by four reserved bytes.
	LayoutDuration
)

// TimingGate selects the timing layout of animation sequences.
var TimingGate = warcraft.Gate{
	{Until: warcraft.BurningCrusade, Layout: LayoutTimestamps},
	{Until: warcraft.Latest, Layout: LayoutDuration},
}

// NewChunk allocates the chunk registered under sig.
// It returns nil for tags that are kept as raw chunks.
func NewChunk(sig iff.Signature) iff.Chunk {
	switch sig {
	case iff.SignatureFormatVersion:
		return &iff.FormatVersion{}

	case SignatureAnimationSequences:
		return &AnimationSequences{}
	}

	return nil
}

// SequenceFlags are the flags of an animation sequence.
type SequenceFlags uint32

// Sequence flags.
const (
	SequenceFlagBlendTimeIn                      SequenceFlags = 0x8
	SequenceFlagIsLoaded                         SequenceFlags = 0x20
	SequenceFlagIsAliasedAndHasFollowupAnimation SequenceFlags = 0x40
	SequenceFlagIsBlended                        SequenceFlags = 0x80
)

// AnimationSequence is an animation definition.
//
// Only one timing subset is populated: StartTimestamp and EndTimestamp with
// LayoutTimestamps, Duration and DurationReserved with LayoutDuration.
type AnimationSequence struct {
	AnimationID uint32

	StartTimestamp uint32
	EndTimestamp   uint32

	Duration         uint32
	DurationReserved uint32

	MovementSpeed          float32
	Flags                  SequenceFlags
	Probability            int16
	Padding                uint16
	ReplayRange            warcraft.Range
	BlendTime              uint32
	BoundingBox            warcraft.Box
	BoundingSphereRadius   float32
	NextVariation          int16
	NextAliasedAnimationID uint16
}

// Animation returns the reference to the sequence's AnimationData row.
func (s *AnimationSequence) Animation() dbc.ForeignKey {
	return dbc.NewForeignKey(dbc.AnimationData, dbc.FieldID, s.AnimationID)
}

// sequenceTail is everything after the timing span.
type sequenceTail struct {
	MovementSpeed          float32
	Flags                  SequenceFlags
	Probability            int16
	Padding                uint16
	ReplayRange            warcraft.Range
	BlendTime              uint32
	BoundingBox            warcraft.Box
	BoundingSphereRadius   float32
	NextVariation          int16
	NextAliasedAnimationID uint16
}

func (s *AnimationSequence) unmarshal(rec []byte, layout warcraft.Layout) error {
	r := bytes.NewReader(rec)

	var timing [2]uint32
	var tail sequenceTail
	for _, v := range []interface{}{&s.AnimationID, &timing, &tail} {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return err
		}
	}

	switch layout {
	case LayoutTimestamps:
		s.StartTimestamp, s.EndTimestamp = timing[0], timing[1]

	default:
		s.Duration, s.DurationReserved = timing[0], timing[1]
	}

	s.MovementSpeed = tail.MovementSpeed
	s.Flags = tail.Flags
	s.Probability = tail.Probability
	s.Padding = tail.Padding
	s.ReplayRange = tail.ReplayRange
	s.BlendTime = tail.BlendTime
	s.BoundingBox = tail.BoundingBox
	s.BoundingSphereRadius = tail.BoundingSphereRadius
	s.NextVariation = tail.NextVariation
	s.NextAliasedAnimationID = tail.NextAliasedAnimationID

	return nil
}

func (s *AnimationSequence) marshal(buf *bytes.Buffer, layout warcraft.Layout) error {
	var timing [2]uint32
	switch layout {
	case LayoutTimestamps:
		timing = [2]uint32{s.StartTimestamp, s.EndTimestamp}

	default:
		timing = [2]uint32{s.Duration, s.DurationReserved}
	}

	tail := sequenceTail{
		MovementSpeed:          s.MovementSpeed,
		Flags:                  s.Flags,
		Probability:            s.Probability,
		Padding:                s.Padding,
		ReplayRange:            s.ReplayRange,
		BlendTime:              s.BlendTime,
		BoundingBox:            s.BoundingBox,
		BoundingSphereRadius:   s.BoundingSphereRadius,
		NextVariation:          s.NextVariation,
		NextAliasedAnimationID: s.NextAliasedAnimationID,
	}

	for _, v := range []interface{}{s.AnimationID, timing, &tail} {
		if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// AnimationSequences is the SEQS chunk.
type AnimationSequences struct {
	Sequences []AnimationSequence
}

// Signature implements iff.Chunk.
func (c *AnimationSequences) Signature() iff.Signature {
	return SignatureAnimationSequences
}

// Unmarshal implements iff.Chunk.
func (c *AnimationSequences) Unmarshal(data []byte, version warcraft.Version) error {
	layout, err := TimingGate.LayoutFor(version)
	if err != nil {
		return err
	}

	n, err := iff.ElementCount(SignatureAnimationSequences, data, AnimationSequenceSize)
	if err != nil {
		return err
	}

	c.Sequences = make([]AnimationSequence, n)
	for i := range c.Sequences {
		rec := data[i*AnimationSequenceSize : (i+1)*AnimationSequenceSize]
		if err := c.Sequences[i].unmarshal(rec, layout); err != nil {
			return err
		}
	}
	return nil
}

// Marshal implements iff.Chunk.
func (c *AnimationSequences) Marshal(version warcraft.Version) ([]byte, error) {
	layout, err := TimingGate.LayoutFor(version)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(c.Sequences) * AnimationSequenceSize)
	for i := range c.Sequences {
		if err := c.Sequences[i].marshal(&buf, layout); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
