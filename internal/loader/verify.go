package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"regexp"

	"golang.org/x/sync/errgroup"

	"github.com/ptolstoi/warcraftassets/internal/logger"
	"github.com/ptolstoi/warcraftassets/wdl"
	"github.com/ptolstoi/warcraftassets/wmo"
)

// ErrMismatch is returned when re-encoding a file does not reproduce its bytes.
var ErrMismatch = errors.New("re-encoded bytes differ")

var reGroupFile = regexp.MustCompile(`_[0-9]{3}\.wmo$`)

// VerifyResult is the outcome of the check of a single file.
type VerifyResult struct {
	Name string
	Size int
	Err  error
}

func encodeAgain(name string, data []byte, l *Loader) ([]byte, error) {
	switch {
	case path.Ext(name) == ".wdl":
		f, err := wdl.Decode(data, l.Version)
		if err != nil {
			return nil, err
		}
		return f.Encode(l.Version)

	case reGroupFile.MatchString(name):
		g, err := wmo.DecodeGroup(data, l.Version)
		if err != nil {
			return nil, err
		}
		return g.Encode(l.Version)

	case path.Ext(name) == ".wmo":
		m, err := wmo.LoadRoot(data, l.Version)
		if err != nil {
			return nil, err
		}
		if err := m.ResolveReferences(); err != nil {
			return nil, err
		}
		return m.Encode()
	}

	return nil, fmt.Errorf("unrecognized file type")
}

func firstDifference(a []byte, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// Verify decodes and re-encodes every named file in parallel and checks
// that the output is identical to the input. Results follow the order of names.
func (l *Loader) Verify(ctx context.Context, names []string) []VerifyResult {
	results := make([]VerifyResult, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers())

	for i, name := range names {
		g.Go(func() error {
			res := &results[i]
			res.Name = name

			if err := ctx.Err(); err != nil {
				res.Err = err
				return nil
			}

			data, err := l.readFile(name)
			if err != nil {
				res.Err = err
				return nil
			}
			res.Size = len(data)

			out, err := encodeAgain(name, data, l)
			if err != nil {
				res.Err = err
				return nil
			}

			if !bytes.Equal(data, out) {
				res.Err = fmt.Errorf("%w at offset %d (%d bytes in, %d out)",
					ErrMismatch, firstDifference(data, out), len(data), len(out))
			}
			return nil
		})
	}

	g.Wait() //nolint:errcheck

	for _, res := range results {
		if res.Err != nil {
			l.Log(logger.Error, "%s: %v", res.Name, res.Err)
		} else {
			l.Log(logger.Debug, "%s: ok", res.Name)
		}
	}

	return results
}
