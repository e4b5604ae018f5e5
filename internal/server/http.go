package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/Martinsschnee/pbweb/internal/config"
	"github.com/Martinsschnee/pbweb/internal/logger"
)

type httpServer struct {
	server *http.Server
	log    *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, log *logger.Logger) *httpServer {
	if cfg.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, cfg.RequestTimeout, "request timed out")
	}

	log.Info().Str("address", cfg.HTTPAddress).Msg("creating HTTP server")

	return &httpServer{
		server: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: handler,
		},
		log: log,
	}
}

func (h *httpServer) run() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.log.Error().Err(err).Msg("HTTP server stopped")
	}
}

func (h *httpServer) shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.log.Error().Err(err).Msg("HTTP server shutdown")
	}
}
