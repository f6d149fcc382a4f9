package handler

import (
	"github.com/adontsov/go-note-keeper/internal/config"
	"github.com/adontsov/go-note-keeper/internal/handler/http"
	"github.com/adontsov/go-note-keeper/internal/logger"
	"github.com/adontsov/go-note-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
