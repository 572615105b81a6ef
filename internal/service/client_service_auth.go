package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronin/scanledger/internal/adapter"
	"github.com/avoronin/scanledger/internal/config"
	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/models"
)

// clientAuthService establishes the device identity against the remote
// target using the credentials from configuration. On success the transport
// adapter holds the issued bearer token, so the service itself is stateless.
type clientAuthService struct {
	adapter adapter.ServerAdapter
	cfg     config.ClientApp
	logger  *logger.Logger
}

// NewClientAuthService constructs a [ClientAuthService] using the device
// identity from cfg.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter: serverAdapter,
		cfg:     cfg,
		logger:  logger,
	}
}

// EnsureSession logs the device in. An unknown device is registered first
// and then holds the token issued by registration. A device_id collision on
// registration means the stored secret differs from ours, which is not
// recoverable here.
func (s *clientAuthService) EnsureSession(ctx context.Context) error {
	_, err := s.adapter.Login(ctx, models.LoginDeviceRequest{
		DeviceID: s.cfg.DeviceID,
		Secret:   s.cfg.DeviceSecret,
	})
	if err == nil {
		s.logger.Info().
			Str("func", "clientAuthService.EnsureSession").
			Str("device_id", s.cfg.DeviceID).
			Msg("device logged in")
		return nil
	}
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("device login: %w", err)
	}

	s.logger.Info().
		Str("func", "clientAuthService.EnsureSession").
		Str("device_id", s.cfg.DeviceID).
		Msg("device unknown to server, registering")

	_, err = s.adapter.RegisterDevice(ctx, models.RegisterDeviceRequest{
		DeviceID: s.cfg.DeviceID,
		Name:     s.cfg.DeviceName,
		Secret:   s.cfg.DeviceSecret,
	})
	if err != nil {
		return fmt.Errorf("device registration: %w", err)
	}

	s.logger.Info().
		Str("func", "clientAuthService.EnsureSession").
		Str("device_id", s.cfg.DeviceID).
		Msg("device registered")
	return nil
}
