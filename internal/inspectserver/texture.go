package inspectserver

import (
	"bytes"
	"image/png"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/ptolstoi/warcraftassets/catalog"
	"github.com/ptolstoi/warcraftassets/internal/loader"
	"github.com/ptolstoi/warcraftassets/internal/logger"
)

// FileCache stores rendered files.
type FileCache interface {
	CachedFile(path string, fileType string) (*catalog.CachedFile, error)
	SaveFile(file *catalog.CachedFile) error
}

func (s *Server) renderTexture(name string, modTime time.Time) (*catalog.CachedFile, error) {
	img, err := s.Loader.LoadTexture(name)
	if err != nil {
		return nil, err
	}

	buffer := new(bytes.Buffer)

	encoder := png.Encoder{
		CompressionLevel: png.BestCompression,
	}

	if err := encoder.Encode(buffer, img); err != nil {
		return nil, err
	}

	return &catalog.CachedFile{
		Path:         name,
		FileType:     "png",
		LastModified: modTime,
		Content:      buffer.Bytes(),
	}, nil
}

func (s *Server) serveTexture(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	noCache := len(r.URL.Query()["noCache"]) != 0
	name := loader.TextureName(strings.TrimPrefix(ps.ByName("path"), "/"))

	modTime, err := s.Loader.TextureModTime(name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	modTime = modTime.UTC().Truncate(time.Second)

	var file *catalog.CachedFile
	if s.Cache != nil && !noCache {
		file, err = s.Cache.CachedFile(name, "png")
		if err != nil {
			s.writeError(w, err)
			return
		}
		if file != nil && file.LastModified.Before(modTime) {
			file = nil
		}
	}

	if file == nil {
		file, err = s.renderTexture(name, modTime)
		if err != nil {
			s.writeError(w, err)
			return
		}

		if s.Cache != nil {
			if err := s.Cache.SaveFile(file); err != nil {
				s.Log(logger.Warn, "unable to cache %s: %v", name, err)
			}
		}
	} else {
		s.Log(logger.Debug, "file found in cache: %v %v %v", file.Path, file.FileType, file.LastModified)
	}

	w.Header().Set(contentType, "image/png")
	w.Write(file.Content) //nolint:errcheck
}
