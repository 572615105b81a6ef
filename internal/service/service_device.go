package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avoronin/scanledger/internal/config"
	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/internal/store"
	"github.com/avoronin/scanledger/internal/utils"
	"github.com/avoronin/scanledger/models"
)

// deviceService is the concrete implementation of DeviceService.
// It handles device registration, secret verification, and JWT token
// lifecycle using a DeviceRepository for persistence and bcrypt for secret
// hashing.
type deviceService struct {
	// deviceRepository is the data-access layer used to create and look up
	// devices.
	deviceRepository store.DeviceRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewDeviceService constructs a new DeviceService wired to the given
// DeviceRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewDeviceService(deviceRepository store.DeviceRepository, cfg config.Server, logger *logger.Logger) DeviceService {
	return &deviceService{
		deviceRepository: deviceRepository,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// Register creates a new device record.
//
// The plain secret never reaches the database: it is bcrypt-hashed before
// persistence. On success a bearer token is issued immediately so a freshly
// registered device can push without a second round trip.
//
// Returns:
//   - ErrInvalidDataProvided if DeviceID or Secret is empty.
//   - store.ErrDeviceAlreadyExists (wrapped) if the device_id is taken.
func (s *deviceService) Register(ctx context.Context, req models.RegisterDeviceRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if req.DeviceID == "" || req.Secret == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	secretHash, err := utils.HashSecret(req.Secret)
	if err != nil {
		log.Err(err).Str("func", "deviceService.Register").Msg("error hashing device secret")
		return models.Token{}, fmt.Errorf("hash device secret: %w", err)
	}

	device, err := s.deviceRepository.CreateDevice(ctx, models.Device{
		DeviceID:   req.DeviceID,
		Name:       req.Name,
		SecretHash: secretHash,
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("create device: %w", err)
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, device.DeviceID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "deviceService.Register").Msg("error generating token")
		return models.Token{}, fmt.Errorf("generate token: %w", err)
	}

	log.Info().
		Str("func", "deviceService.Register").
		Str("device_id", device.DeviceID).
		Msg("device registered")
	return token, nil
}

// Login authenticates an existing device by comparing the presented secret
// against the stored bcrypt hash.
//
// Returns:
//   - ErrInvalidDataProvided if DeviceID or Secret is empty.
//   - ErrWrongSecret if the device is unknown or the secret does not match.
//     Both cases collapse into the same error so a caller cannot probe which
//     device IDs exist.
func (s *deviceService) Login(ctx context.Context, req models.LoginDeviceRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if req.DeviceID == "" || req.Secret == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	device, err := s.deviceRepository.FindDeviceByDeviceID(ctx, req.DeviceID)
	if err != nil {
		if errors.Is(err, store.ErrDeviceNotFound) {
			return models.Token{}, ErrWrongSecret
		}
		return models.Token{}, fmt.Errorf("find device: %w", err)
	}

	if err = utils.CompareSecret(device.SecretHash, req.Secret); err != nil {
		log.Info().
			Str("func", "deviceService.Login").
			Str("device_id", req.DeviceID).
			Msg("device login rejected: secret mismatch")
		return models.Token{}, ErrWrongSecret
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, device.DeviceID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "deviceService.Login").Msg("error generating token")
		return models.Token{}, fmt.Errorf("generate token: %w", err)
	}

	return token, nil
}

// ValidateToken verifies tokenString and returns the device identifier from
// its subject claim.
func (s *deviceService) ValidateToken(tokenString string) (string, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return "", fmt.Errorf("validate token: %w", err)
	}

	return token.DeviceID, nil
}
