package service

import (
	"github.com/avoronin/scanledger/internal/config"
	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/internal/store"
)

type Services struct {
	DeviceService   DeviceService
	SnapshotService SnapshotService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoSvc, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		DeviceService:   NewDeviceService(storages.DeviceRepository, cfg.Server, logger),
		SnapshotService: NewSnapshotService(storages.SnapshotRepository, logger),
		AppInfoService:  appInfoSvc,
	}, nil
}
