package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTraceIDHandler() *Handler {
	return &Handler{
		logger:   logger.Nop(),
		services: &service.Services{},
	}
}

func TestWithTraceID_GeneratesIDWhenMissing(t *testing.T) {
	h := newTraceIDHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	traceID := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, traceID)

	// сгенерированный trace ID должен быть валидным UUID
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
}

func TestWithTraceID_PropagatesIncomingID(t *testing.T) {
	const incoming = "client-supplied-trace-id"

	h := newTraceIDHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(traceIDHeader, incoming)
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, incoming, rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_LoggerAttachedToContext(t *testing.T) {
	h := newTraceIDHandler()

	var log *logger.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log = logger.FromRequest(r)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, log)
}
