package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/avoronin/scanledger/models"
)

// HTTPClientConfig holds the settings needed to construct the HTTP server
// adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds a resty-backed ServerAdapter for the given
// base URL. A zero timeout defaults to 15 seconds.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

// SetToken stores the bearer token used for authenticated calls.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token returns the currently held bearer token, empty when the device has
// not authenticated yet.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/device/register")
	if err != nil {
		return models.Token{}, fmt.Errorf("register device request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, DeviceID: req.DeviceID}, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginDeviceRequest) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/device/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login device request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, DeviceID: req.DeviceID}, nil
}

func (h *httpServerAdapter) PushSnapshot(ctx context.Context, entries []models.LedgerEntry) error {
	req := models.PushRequest{Entries: entries, Length: len(entries)}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/ledger/push")
	if err != nil {
		return fmt.Errorf("push snapshot request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) FetchSnapshot(ctx context.Context) (models.SnapshotResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/ledger/snapshot")
	if err != nil {
		return models.SnapshotResponse{}, fmt.Errorf("fetch snapshot request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SnapshotResponse{}, err
	}

	var sr models.SnapshotResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.SnapshotResponse{}, fmt.Errorf("decode snapshot response: %w", err)
	}

	return sr, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseBearerToken(header string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", fmt.Errorf("authorization header %q is not a bearer token", header)
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", fmt.Errorf("authorization header carries an empty token")
	}
	return token, nil
}
