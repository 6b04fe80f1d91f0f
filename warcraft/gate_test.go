package warcraft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	layoutOld Layout = iota
	layoutNew
)

func TestGateLayoutFor(t *testing.T) {
	g := Gate{
		{Until: BurningCrusade, Layout: layoutOld},
		{Until: Latest, Layout: layoutNew},
	}

	for _, ca := range []struct {
		version Version
		layout  Layout
	}{
		{Classic, layoutOld},
		{BurningCrusade, layoutOld},
		{Wrath, layoutNew},
		{Latest, layoutNew},
	} {
		t.Run(ca.version.String(), func(t *testing.T) {
			l, err := g.LayoutFor(ca.version)
			require.NoError(t, err)
			require.Equal(t, ca.layout, l)
		})
	}
}

func TestGateUnsupported(t *testing.T) {
	g := Gate{{Until: Wrath, Layout: layoutOld}}

	for _, v := range []Version{Unknown, Latest + 1, Cataclysm} {
		_, err := g.LayoutFor(v)
		require.ErrorIs(t, err, ErrUnsupportedVersion)
	}
}

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("Wrath")
	require.NoError(t, err)
	require.Equal(t, Wrath, v)

	_, err = ParseVersion("vanilla")
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}
