package inspectserver

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/ptolstoi/warcraftassets/blp"
	"github.com/ptolstoi/warcraftassets/dbc"
	"github.com/ptolstoi/warcraftassets/iff"
	"github.com/ptolstoi/warcraftassets/internal/loader"
	"github.com/ptolstoi/warcraftassets/internal/logger"
	"github.com/ptolstoi/warcraftassets/warcraft"
	"github.com/ptolstoi/warcraftassets/wmo"
)

const contentType = "content-type"

func (s *Server) initHTTP() {
	s.httpRouter = httprouter.New()
	s.httpRouter.GET("/v1/model/:name", s.serveModel)
	s.httpRouter.GET("/v1/model/:name/textures", s.serveTextures)
	s.httpRouter.GET("/v1/terrain/:name", s.serveTerrain)
	s.httpRouter.GET("/v1/texture/*path", s.serveTexture)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.Log(logger.Debug, "%v %v", req.Method, req.URL)

	s.httpRouter.ServeHTTP(w, req)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound

	case errors.Is(err, loader.ErrInvalidName):
		return http.StatusBadRequest

	case errors.Is(err, loader.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge

	case errors.Is(err, iff.ErrTruncatedBuffer),
		errors.Is(err, iff.ErrMalformedSignature),
		errors.Is(err, wmo.ErrMissingChunk),
		errors.Is(err, blp.ErrTruncatedTexture),
		errors.Is(err, blp.ErrUnsupportedTexture),
		errors.Is(err, warcraft.ErrUnsupportedVersion):
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.Log(logger.Error, "%v", err)
	} else {
		s.Log(logger.Warn, "%v", err)
	}

	w.Header().Set(contentType, "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct { //nolint:errcheck
		Error string `json:"error"`
	}{
		Error: err.Error(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	byts, err := json.Marshal(v)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set(contentType, "application/json")
	w.Write(byts) //nolint:errcheck
}

// resolveField returns field of the record key points to, or nil if the
// key does not resolve or no registry is configured.
func (s *Server) resolveField(key dbc.ForeignKey, field string) *string {
	if s.Registry == nil {
		return nil
	}

	rec, err := key.Resolve(s.Registry)
	if err != nil {
		if !errors.Is(err, dbc.ErrUnresolvedReference) {
			s.Log(logger.Warn, "%v", err)
		}
		return nil
	}

	v, ok := rec.Fields[field]
	if !ok {
		return nil
	}
	return &v
}

func (s *Server) serveModel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	m, err := s.Loader.LoadModel(r.Context(), ps.ByName("name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	defer m.Close()

	s.writeJSON(w, s.newModelResponse(ps.ByName("name"), m))
}

func (s *Server) serveTextures(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	m, err := s.Loader.LoadModel(r.Context(), ps.ByName("name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	defer m.Close()

	textures := m.Textures()
	if textures == nil {
		textures = []string{}
	}

	s.writeJSON(w, struct {
		Textures []string `json:"textures"`
	}{
		Textures: textures,
	})
}

func (s *Server) serveTerrain(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	f, err := s.Loader.LoadTerrain(ps.ByName("name"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, newTerrainResponse(ps.ByName("name"), f))
}
