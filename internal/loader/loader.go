// Package loader reads asset files from a directory and assembles them.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"code.cloudfoundry.org/bytefmt"
	"golang.org/x/sync/errgroup"

	"github.com/ptolstoi/warcraftassets/internal/logger"
	"github.com/ptolstoi/warcraftassets/warcraft"
	"github.com/ptolstoi/warcraftassets/wdl"
	"github.com/ptolstoi/warcraftassets/wmo"
)

// ErrFileTooLarge is returned when a file exceeds the configured maximum size.
var ErrFileTooLarge = errors.New("file too large")

// ErrInvalidName is returned for asset names that would leave the data directory.
var ErrInvalidName = errors.New("invalid asset name")

// Loader reads files from a data directory.
type Loader struct {
	Dir         string
	Version     warcraft.Version
	MaxFileSize uint64
	Workers     int
	Parent      logger.Writer
}

// Log implements logger.Writer.
func (l *Loader) Log(level logger.Level, format string, args ...any) {
	if l.Parent != nil {
		l.Parent.Log(level, "[loader] "+format, args...)
	}
}

func (l *Loader) workers() int {
	if l.Workers > 0 {
		return l.Workers
	}
	return runtime.NumCPU()
}

func (l *Loader) path(name string) (string, error) {
	if name == "" || !fs.ValidPath(name) {
		return "", fmt.Errorf("%w: '%s'", ErrInvalidName, name)
	}
	return filepath.Join(l.Dir, filepath.FromSlash(name)), nil
}

func (l *Loader) readFile(name string) ([]byte, error) {
	fpath, err := l.path(name)
	if err != nil {
		return nil, err
	}

	st, err := os.Stat(fpath)
	if err != nil {
		return nil, err
	}

	if l.MaxFileSize != 0 && uint64(st.Size()) > l.MaxFileSize {
		return nil, fmt.Errorf("%w: %s is %s, maximum is %s", ErrFileTooLarge, name,
			bytefmt.ByteSize(uint64(st.Size())), bytefmt.ByteSize(l.MaxFileSize))
	}

	return os.ReadFile(fpath)
}

// GroupFileName returns the name of the group file with index i of a root file.
func GroupFileName(root string, i int) string {
	return fmt.Sprintf("%s_%03d.wmo", strings.TrimSuffix(root, ".wmo"), i)
}

// LoadModel reads the root file name.wmo and the group files it declares,
// attaches the groups in file order and resolves references.
// Missing group files and groups the root does not own are skipped.
func (l *Loader) LoadModel(ctx context.Context, name string) (*wmo.Model, error) {
	name = strings.TrimSuffix(name, ".wmo")

	data, err := l.readFile(name + ".wmo")
	if err != nil {
		return nil, err
	}

	m, err := wmo.LoadRoot(data, l.Version)
	if err != nil {
		return nil, fmt.Errorf("%s.wmo: %w", name, err)
	}

	// group files are read only for group information records
	count := m.DeclaredGroupCount()
	if listed := len(m.Root().GroupInformation.Groups); count > listed {
		l.Log(logger.Warn, "%s.wmo declares %d groups but lists %d, reading %d",
			name, count, listed, listed)
		count = listed
	}

	groups := make([]*wmo.Group, count)
	var total atomic.Uint64
	total.Add(uint64(len(data)))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers())

	for i := range groups {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			fname := GroupFileName(name, i)
			byts, err := l.readFile(fname)
			if errors.Is(err, fs.ErrNotExist) {
				l.Log(logger.Warn, "%s is missing", fname)
				return nil
			} else if err != nil {
				return err
			}
			total.Add(uint64(len(byts)))

			groups[i], err = wmo.DecodeGroup(byts, l.Version)
			if err != nil {
				return fmt.Errorf("%s: %w", fname, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, grp := range groups {
		if grp == nil {
			continue
		}

		ok, err := m.Attach(grp)
		if err != nil {
			return nil, err
		}
		if !ok {
			l.Log(logger.Warn, "%s is not owned by %s.wmo, skipped", GroupFileName(name, i), name)
		}
	}

	if err := m.ResolveReferences(); err != nil {
		return nil, err
	}

	l.Log(logger.Info, "%s.wmo loaded, %d of %d groups, %s read",
		name, m.GroupCount(), m.DeclaredGroupCount(), bytefmt.ByteSize(total.Load()))

	return m, nil
}

// LoadTerrain reads the WDL file name.wdl.
func (l *Loader) LoadTerrain(name string) (*wdl.File, error) {
	name = strings.TrimSuffix(name, ".wdl")

	data, err := l.readFile(name + ".wdl")
	if err != nil {
		return nil, err
	}

	f, err := wdl.Decode(data, l.Version)
	if err != nil {
		return nil, fmt.Errorf("%s.wdl: %w", name, err)
	}

	l.Log(logger.Info, "%s.wdl loaded, %d map areas", name, len(f.Areas))

	return f, nil
}
