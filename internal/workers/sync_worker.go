package workers

import (
	"context"
	"time"

	"github.com/avoronin/scanledger/internal/service"
)

// autoSyncWorker adapts a [service.ClientSyncJob] to the Worker interface so
// that the periodic ledger sync can be started alongside other background
// workers.
type autoSyncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

// NewAutoSyncWorker wraps job into a Worker that starts the job with the
// given tick interval when Run is called.
func NewAutoSyncWorker(job service.ClientSyncJob, interval time.Duration) Worker {
	return &autoSyncWorker{
		job:      job,
		interval: interval,
	}
}

// Run starts the periodic sync job and returns immediately: the job owns its
// own goroutine and keeps ticking until its Stop method is called.
func (w *autoSyncWorker) Run() {
	w.job.Start(context.Background(), w.interval)
}
