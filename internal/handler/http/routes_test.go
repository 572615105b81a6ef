package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/internal/service"
	"github.com/avoronin/scanledger/models"
	"github.com/stretchr/testify/assert"
)

// ---- Mock: DeviceService ----

type mockDeviceSvc struct{}

func (m *mockDeviceSvc) Register(_ context.Context, _ models.RegisterDeviceRequest) (models.Token, error) {
	return models.Token{SignedString: "stub"}, nil
}
func (m *mockDeviceSvc) Login(_ context.Context, _ models.LoginDeviceRequest) (models.Token, error) {
	return models.Token{SignedString: "stub"}, nil
}
func (m *mockDeviceSvc) ValidateToken(_ string) (string, error) {
	return "warehouse-scanner-01", nil
}

// ---- Mock: SnapshotService ----

type mockSnapshotSvc struct{}

func (m *mockSnapshotSvc) Push(_ context.Context, _ string, _ models.PushRequest) error {
	return nil
}
func (m *mockSnapshotSvc) Get(_ context.Context, _ string) (models.SnapshotResponse, error) {
	return models.SnapshotResponse{}, nil
}

// ---- Helper ----

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			DeviceService:   &mockDeviceSvc{},
			SnapshotService: &mockSnapshotSvc{},
			AppInfoService:  &mockAppInfoService{version: "test-version"},
		},
	}
	return h.Init()
}

func validAuthHeader() string { return "Bearer stub-token" }

// ---- Public routes: reachable without auth ----

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/device/register"},
		{http.MethodPost, "/api/device/login"},
		{http.MethodGet, "/api/version"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
		})
	}
}

// ---- Protected routes: 401 without token ----

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/ledger/push"},
		{http.MethodGet, "/api/ledger/snapshot"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" without token → 401", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code,
				"missing token should result in 401")
		})
	}
}

// ---- Protected routes: pass with valid token ----

func TestInit_ProtectedRoutes_PassWithValidToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/ledger/snapshot", nil)
	req.Header.Set("Authorization", validAuthHeader())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEqual(t, http.StatusUnauthorized, rr.Code,
		"valid token should not result in 401")
}

// ---- Unknown routes return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method  string
		path    string
		addAuth bool // часть путей защищена auth — нужен токен чтобы дойти до 404
	}{
		{http.MethodGet, "/api/nonexistent", false},
		{http.MethodPost, "/api/ledger/unknown", true},
		{http.MethodGet, "/totally/wrong", false},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.addAuth {
				req.Header.Set("Authorization", validAuthHeader())
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}
