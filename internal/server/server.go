package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Martinsschnee/pbweb/internal/config"
	handlerHTTP "github.com/Martinsschnee/pbweb/internal/handler/http"
	"github.com/Martinsschnee/pbweb/internal/logger"
)

type server struct {
	http *httpServer
	log  *logger.Logger
}

func NewServer(handler *handlerHTTP.Handler, cfg config.Server, log *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoListenAddress
	}

	return &server{
		http: newHTTPServer(handler.Init(), cfg, log),
		log:  log,
	}, nil
}

// RunServer serves until SIGINT, SIGTERM or SIGQUIT, then shuts down
// gracefully.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.log.Info().Msg("launching HTTP server")
	go s.http.run()

	<-ctx.Done()
	s.Shutdown()
	s.log.Info().Msg("server stopped gracefully")
}

func (s *server) Shutdown() {
	s.http.shutdown()
}
