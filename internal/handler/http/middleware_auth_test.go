package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/internal/service"
	"github.com/avoronin/scanledger/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func newHandlerWithDeviceService(deviceSvc service.DeviceService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			DeviceService: deviceSvc,
		},
	}
}

// injectNopLogger кладёт nop-логгер в контекст запроса.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "no space in header",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty token after scheme",
			header:  "Bearer ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "extra parts are ignored",
			header:    "Bearer token extra",
			wantToken: "token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ---- auth middleware tests ----

func TestAuth_NoAuthorizationHeader(t *testing.T) {
	h := newHandlerWithDeviceService(&mockDeviceService{})

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	rr := executeAuth(h, "", next)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, nextCalled)
}

func TestAuth_MalformedHeader(t *testing.T) {
	h := newHandlerWithDeviceService(&mockDeviceService{})

	rr := executeAuth(h, "Bearer", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler must not be called")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	device := &mockDeviceService{
		validateTokenFn: func(_ string) (string, error) {
			return "", errors.New("token is malformed")
		},
	}
	h := newHandlerWithDeviceService(device)

	rr := executeAuth(h, "Bearer bad-token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler must not be called")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// TestAuth_ValidToken verifies that a valid token reaches the next handler
// with the authenticated device ID stored in the request context.
func TestAuth_ValidToken(t *testing.T) {
	const deviceID = "warehouse-scanner-01"

	device := &mockDeviceService{
		validateTokenFn: func(tokenString string) (string, error) {
			assert.Equal(t, "good-token", tokenString)
			return deviceID, nil
		},
	}
	h := newHandlerWithDeviceService(device)

	var gotDeviceID string
	var found bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDeviceID, found = utils.GetDeviceIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "Bearer good-token", next)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, found)
	assert.Equal(t, deviceID, gotDeviceID)
}

// TestAuth_EndToEnd drives the middleware with a token issued and validated
// by the real deviceService implementation.
func TestAuth_EndToEnd(t *testing.T) {
	const (
		signKey  = "test-sign-key"
		issuer   = "scanledger"
		deviceID = "warehouse-scanner-01"
	)

	token, err := utils.GenerateJWTToken(issuer, deviceID, time.Hour, signKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	device := &mockDeviceService{
		validateTokenFn: func(tokenString string) (string, error) {
			parsed, parseErr := utils.ValidateAndParseJWTToken(tokenString, signKey, issuer)
			if parseErr != nil {
				return "", parseErr
			}
			return parsed.DeviceID, nil
		},
	}
	h := newHandlerWithDeviceService(device)

	var gotDeviceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDeviceID, _ = utils.GetDeviceIDFromContext(r.Context())
	})

	rr := executeAuth(h, "Bearer "+token.SignedString, next)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, deviceID, gotDeviceID)
}
