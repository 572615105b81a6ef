package handler

import (
	"github.com/avoronin/scanledger/internal/config"
	"github.com/avoronin/scanledger/internal/handler/http"
	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
