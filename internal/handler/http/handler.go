package http

import (
	"github.com/Martinsschnee/pbweb/internal/config"
	"github.com/Martinsschnee/pbweb/internal/logger"
	"github.com/Martinsschnee/pbweb/internal/service"
)

// authCookieName is the cookie carrying the session token.
const authCookieName = "auth_token"

type Handler struct {
	services *service.Services
	cfg      config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
