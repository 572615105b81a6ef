package service

import (
	"github.com/avoronin/scanledger/internal/adapter"
	"github.com/avoronin/scanledger/internal/config"
	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/internal/store"
)

type ClientServices struct {
	SessionService ClientSessionService
	SyncService    ClientSyncService
	AuthService    ClientAuthService
	ExportService  ClientExportService
	SyncJob        ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, connectivity adapter.Connectivity, decoder adapter.Decoder, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(storages.LedgerRepository, decoder, cfg.App, logger)
	syncSvc := NewClientSyncService(sessionSvc, serverAdapter, connectivity, logger)

	return &ClientServices{
		SessionService: sessionSvc,
		SyncService:    syncSvc,
		AuthService:    NewClientAuthService(serverAdapter, cfg.App, logger),
		ExportService:  NewClientExportService(sessionSvc, logger),
		SyncJob:        NewClientSyncJob(syncSvc),
	}
}
