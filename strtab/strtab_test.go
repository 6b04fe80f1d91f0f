package strtab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tab := Build([]byte("A\x00BC\x00"))

	s, ok := tab.Lookup(0)
	require.True(t, ok)
	require.Equal(t, "A", s)

	s, ok = tab.Lookup(2)
	require.True(t, ok)
	require.Equal(t, "BC", s)

	_, ok = tab.Lookup(1)
	require.False(t, ok)

	_, ok = tab.Lookup(5)
	require.False(t, ok)

	require.Equal(t, 2, tab.Len())
}

func TestPadding(t *testing.T) {
	buf := []byte("tex.blp\x00\x00\x00\x00\x00wall.blp\x00\x00\x00\x00")
	tab := Build(buf)

	s, ok := tab.Lookup(12)
	require.True(t, ok)
	require.Equal(t, "wall.blp", s)

	s, ok = tab.Lookup(9)
	require.True(t, ok)
	require.Equal(t, "", s)

	require.Equal(t, []string{"tex.blp", "wall.blp"}, tab.Strings())
	require.Equal(t, buf, tab.Bytes())

	off, ok := tab.Offset("wall.blp")
	require.True(t, ok)
	require.Equal(t, uint32(12), off)
}

func TestUnterminatedTail(t *testing.T) {
	tab := Build([]byte("A\x00BC"))

	_, ok := tab.Lookup(2)
	require.False(t, ok)
	require.Equal(t, []Entry{{Offset: 0, Value: "A"}}, tab.Entries())
}

func TestBuildCopies(t *testing.T) {
	buf := []byte("A\x00")
	tab := Build(buf)
	buf[0] = 'Z'

	s, _ := tab.Lookup(0)
	require.Equal(t, "A", s)
}
