// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avoronin/scanledger/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySyncService считает вызовы Sync.
type spySyncService struct {
	calls atomic.Int64
	err   error
}

func (s *spySyncService) Sync(context.Context) (models.SyncAttempt, error) {
	s.calls.Add(1)
	return models.SyncAttempt{}, s.err
}

func (s *spySyncService) LastAttempt() (models.SyncAttempt, bool) {
	return models.SyncAttempt{}, false
}

func (s *spySyncService) Restore(context.Context) (int, error) {
	return 0, nil
}

// ── NewClientSyncJob ─────────────────────────────────────────────────────────

func TestNewClientSyncJob_ReturnsInterface(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy)
	require.NotNil(t, job)

	// проверяем что возвращённый объект реализует ClientSyncJob
	var _ ClientSyncJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSyncJob_Start_CallsSync(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy)
	ctx := context.Background()

	// Интервал 10ms — за 55ms должно быть ~5 тиков
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Sync должен быть вызван несколько раз, вызвано: %d", got)
}

func TestClientSyncJob_Start_KeepsTickingOnErrors(t *testing.T) {
	spy := &spySyncService{err: ErrEmptyLedger}
	job := NewClientSyncJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3), "ошибки синка не останавливают тикер")
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop вызовов быть не должно")
}

func TestClientSyncJob_Stop_WithoutStart(t *testing.T) {
	job := NewClientSyncJob(&spySyncService{})

	// Stop без Start — no-op
	job.Stop()
}

func TestClientSyncJob_Restart_ReplacesPreviousJob(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy)

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 10*time.Millisecond)

	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(1), "второй Start должен заменить первый")
}

func TestClientSyncJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	cancel()
	time.Sleep(15 * time.Millisecond)

	callsAfterCancel := spy.calls.Load()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, callsAfterCancel, spy.calls.Load(), "отмена контекста останавливает задачу")
}
