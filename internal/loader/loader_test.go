package loader

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptolstoi/warcraftassets/iff"
	"github.com/ptolstoi/warcraftassets/internal/logger"
	"github.com/ptolstoi/warcraftassets/internal/testutil"
	"github.com/ptolstoi/warcraftassets/warcraft"
	"github.com/ptolstoi/warcraftassets/wdl"
	"github.com/ptolstoi/warcraftassets/wmo"
)

func writeFiles(t *testing.T, files map[string][]byte) string {
	dir := t.TempDir()
	for name, byts := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), byts, 0o644))
	}
	return dir
}

func sampleTerrain() []byte {
	var buf bytes.Buffer
	testutil.Chunk(&buf, iff.SignatureFormatVersion, testutil.Encode(uint32(18)))
	testutil.Chunk(&buf, wdl.SignatureMapAreaOffsets, make([]byte, wdl.MapAreaOffsetsSize))
	testutil.Chunk(&buf, wdl.SignatureMapArea, make([]byte, wdl.MapAreaSize))
	testutil.Chunk(&buf, wdl.SignatureMapAreaHoles, make([]byte, wdl.MapAreaHolesSize))
	return buf.Bytes()
}

func TestGroupFileName(t *testing.T) {
	require.Equal(t, "castle_000.wmo", GroupFileName("castle", 0))
	require.Equal(t, "dungeon/castle_012.wmo", GroupFileName("dungeon/castle.wmo", 12))
}

func TestLoadModel(t *testing.T) {
	for _, ca := range []struct {
		name   string
		groups map[string][]byte
		names  []string
	}{
		{
			"all groups",
			map[string][]byte{
				"castle_000.wmo": testutil.SampleGroup(testutil.SampleEntranceOffset, testutil.SampleDescriptiveOffset),
				"castle_001.wmo": testutil.SampleGroup(testutil.SampleCellarOffset, 0),
			},
			[]string{"entrance", "cellar"},
		},
		{
			"missing group",
			map[string][]byte{
				"castle_001.wmo": testutil.SampleGroup(testutil.SampleCellarOffset, 0),
			},
			[]string{"cellar"},
		},
		{
			"group not owned",
			map[string][]byte{
				"castle_000.wmo": testutil.SampleGroup(testutil.SampleEntranceOffset, 0),
				"castle_001.wmo": testutil.SampleGroup(testutil.SampleDescriptiveOffset, 0),
			},
			[]string{"entrance"},
		},
	} {
		t.Run(ca.name, func(t *testing.T) {
			ca.groups["castle.wmo"] = testutil.SampleRoot()
			l := &Loader{
				Dir:     writeFiles(t, ca.groups),
				Version: warcraft.Wrath,
			}

			m, err := l.LoadModel(context.Background(), "castle")
			require.NoError(t, err)
			require.Equal(t, wmo.StateResolved, m.State())
			require.Equal(t, 2, m.DeclaredGroupCount())

			var names []string
			for _, g := range m.Groups() {
				names = append(names, g.Name)
			}
			require.Equal(t, ca.names, names)
		})
	}
}

func TestLoadModelDescriptiveName(t *testing.T) {
	l := &Loader{
		Dir: writeFiles(t, map[string][]byte{
			"castle.wmo":     testutil.SampleRoot(),
			"castle_000.wmo": testutil.SampleGroup(testutil.SampleEntranceOffset, testutil.SampleDescriptiveOffset),
		}),
		Version: warcraft.Wrath,
	}

	m, err := l.LoadModel(context.Background(), "castle.wmo")
	require.NoError(t, err)
	require.Equal(t, "Entrance Hall", m.Groups()[0].DescriptiveName)
	require.Equal(t, wmo.PlaceholderTexture, m.Materials()[1].Texture0)
}

type recordingWriter struct {
	mutex   sync.Mutex
	entries []string
}

func (w *recordingWriter) Log(level logger.Level, format string, args ...any) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.entries = append(w.entries, fmt.Sprintf(format, args...))
}

func TestLoadModelInflatedGroupCount(t *testing.T) {
	for _, ca := range []struct {
		name     string
		declared uint32
	}{
		{"two million", 2000000},
		{"maximum", 0xFFFFFFFF},
	} {
		t.Run(ca.name, func(t *testing.T) {
			root := testutil.SampleRoot()
			// MOHD.GroupCount, after MVER (12 bytes), the MOHD header and TextureCount
			binary.LittleEndian.PutUint32(root[12+8+4:], ca.declared)

			var w recordingWriter
			l := &Loader{
				Dir: writeFiles(t, map[string][]byte{
					"castle.wmo":     root,
					"castle_000.wmo": testutil.SampleGroup(testutil.SampleEntranceOffset, 0),
				}),
				Version: warcraft.Wrath,
				Parent:  &w,
			}

			m, err := l.LoadModel(context.Background(), "castle")
			require.NoError(t, err)
			require.Equal(t, int(ca.declared), m.DeclaredGroupCount())
			require.Equal(t, 1, m.GroupCount())
			require.Equal(t, "entrance", m.Groups()[0].Name)

			require.Contains(t, w.entries,
				fmt.Sprintf("[loader] castle.wmo declares %d groups but lists 2, reading 2", ca.declared))
			require.Contains(t, w.entries, "[loader] castle_001.wmo is missing")
			require.NotContains(t, w.entries, "[loader] castle_002.wmo is missing")
		})
	}
}

func TestLoadModelErrors(t *testing.T) {
	dir := writeFiles(t, map[string][]byte{
		"castle.wmo":     testutil.SampleRoot(),
		"castle_000.wmo": testutil.SampleGroup(testutil.SampleEntranceOffset, 0)[:20],
		"broken.wmo":     testutil.SampleRoot()[:30],
		"fine.wmo":       testutil.SampleRoot(),
	})

	l := &Loader{Dir: dir, Version: warcraft.Wrath}

	_, err := l.LoadModel(context.Background(), "castle")
	require.ErrorIs(t, err, iff.ErrTruncatedBuffer)

	_, err = l.LoadModel(context.Background(), "broken")
	require.ErrorIs(t, err, iff.ErrTruncatedBuffer)

	_, err = l.LoadModel(context.Background(), "absent")
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = l.LoadModel(context.Background(), "../castle")
	require.ErrorIs(t, err, ErrInvalidName)

	l.MaxFileSize = 16
	_, err = l.LoadModel(context.Background(), "fine")
	require.ErrorIs(t, err, ErrFileTooLarge)

	l = &Loader{Dir: dir, Version: warcraft.Unknown}
	_, err = l.LoadModel(context.Background(), "fine")
	require.ErrorIs(t, err, warcraft.ErrUnsupportedVersion)
}

func TestLoadTerrain(t *testing.T) {
	l := &Loader{
		Dir: writeFiles(t, map[string][]byte{
			"azeroth.wdl": sampleTerrain(),
		}),
		Version: warcraft.Wrath,
	}

	f, err := l.LoadTerrain("azeroth")
	require.NoError(t, err)
	require.Len(t, f.Areas, 1)
	require.Len(t, f.Holes, 1)
	require.Equal(t, uint32(18), f.FormatVersion.Value)
}

func TestVerify(t *testing.T) {
	l := &Loader{
		Dir: writeFiles(t, map[string][]byte{
			"castle.wmo":     testutil.SampleRoot(),
			"castle_000.wmo": testutil.SampleGroup(testutil.SampleEntranceOffset, 0),
			"azeroth.wdl":    sampleTerrain(),
			"broken.wdl":     sampleTerrain()[:100],
			"notes.txt":      []byte("hello"),
		}),
		Version: warcraft.Wrath,
		Workers: 2,
	}

	results := l.Verify(context.Background(), []string{
		"castle.wmo",
		"castle_000.wmo",
		"azeroth.wdl",
		"broken.wdl",
		"notes.txt",
		"absent.wmo",
	})
	require.Len(t, results, 6)

	for _, res := range results[:3] {
		require.NoError(t, res.Err, res.Name)
		require.NotZero(t, res.Size)
	}

	require.Equal(t, "broken.wdl", results[3].Name)
	require.ErrorIs(t, results[3].Err, iff.ErrTruncatedBuffer)
	require.EqualError(t, results[4].Err, "unrecognized file type")
	require.ErrorIs(t, results[5].Err, os.ErrNotExist)
}
