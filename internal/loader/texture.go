package loader

import (
	"image"
	"os"
	"strings"
	"time"

	"github.com/ptolstoi/warcraftassets/blp"
	"github.com/ptolstoi/warcraftassets/internal/logger"
)

// TextureName converts a texture path as stored in a texture table to a file name.
func TextureName(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// TextureModTime returns the modification time of a texture file.
func (l *Loader) TextureModTime(name string) (time.Time, error) {
	fpath, err := l.path(TextureName(name))
	if err != nil {
		return time.Time{}, err
	}

	st, err := os.Stat(fpath)
	if err != nil {
		return time.Time{}, err
	}
	return st.ModTime(), nil
}

// LoadTexture reads and decodes the BLP texture name.
func (l *Loader) LoadTexture(name string) (image.Image, error) {
	name = TextureName(name)

	data, err := l.readFile(name)
	if err != nil {
		return nil, err
	}

	img, err := blp.Decode(data)
	if err != nil {
		return nil, err
	}

	l.Log(logger.Debug, "%s decoded, %dx%d", name, img.Bounds().Dx(), img.Bounds().Dy())

	return img, nil
}
