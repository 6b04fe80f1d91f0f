// Package inspectserver serves decoded assets as JSON over HTTP.
package inspectserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/ptolstoi/warcraftassets/dbc"
	"github.com/ptolstoi/warcraftassets/internal/loader"
	"github.com/ptolstoi/warcraftassets/internal/logger"
)

// Server is the inspection HTTP server.
type Server struct {
	Address  string
	Loader   *loader.Loader
	Registry dbc.Registry
	Cache    FileCache
	Parent   logger.Writer

	httpRouter *httprouter.Router
	httpServer *http.Server
	ln         net.Listener
	done       chan struct{}
}

// Initialize starts listening. Requests are served until Close is called.
func (s *Server) Initialize() error {
	s.initHTTP()

	var err error
	s.ln, err = net.Listen("tcp", s.Address)
	if err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.done = make(chan struct{})

	go s.run()

	s.Log(logger.Info, "listener opened on %s", s.ln.Addr())

	return nil
}

func (s *Server) run() {
	defer close(s.done)

	err := s.httpServer.Serve(s.ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.Log(logger.Error, "%v", err)
	}
}

// Close stops the server.
func (s *Server) Close() {
	s.Log(logger.Info, "listener is closing")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.httpServer.Shutdown(ctx) //nolint:errcheck
	<-s.done
}

// Log implements logger.Writer.
func (s *Server) Log(level logger.Level, format string, args ...any) {
	if s.Parent != nil {
		s.Parent.Log(level, "[inspect] "+format, args...)
	}
}

// Addr returns the address the server listens on.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}
