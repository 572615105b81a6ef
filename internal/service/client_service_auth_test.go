package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avoronin/scanledger/internal/adapter"
	"github.com/avoronin/scanledger/internal/config"
	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/internal/mock"
	"github.com/avoronin/scanledger/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (ClientAuthService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	cfg := config.ClientApp{
		DeviceID:     "warehouse-7",
		DeviceName:   "dock scanner",
		DeviceSecret: "s3cret",
	}
	return NewClientAuthService(mockAdapter, cfg, logger.Nop()), mockAdapter
}

func TestClientAuthService_EnsureSession_LoginSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)

	mockAdapter.EXPECT().
		Login(gomock.Any(), models.LoginDeviceRequest{DeviceID: "warehouse-7", Secret: "s3cret"}).
		Return(models.Token{SignedString: "jwt", DeviceID: "warehouse-7"}, nil)

	require.NoError(t, svc.EnsureSession(context.Background()))
}

func TestClientAuthService_EnsureSession_RegistersUnknownDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)

	mockAdapter.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.Token{}, adapter.ErrUnauthorized)
	mockAdapter.EXPECT().
		RegisterDevice(gomock.Any(), models.RegisterDeviceRequest{
			DeviceID: "warehouse-7",
			Name:     "dock scanner",
			Secret:   "s3cret",
		}).
		Return(models.Token{SignedString: "jwt"}, nil)

	require.NoError(t, svc.EnsureSession(context.Background()))
}

func TestClientAuthService_EnsureSession_RegistrationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)

	mockAdapter.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.Token{}, adapter.ErrUnauthorized)
	mockAdapter.EXPECT().
		RegisterDevice(gomock.Any(), gomock.Any()).
		Return(models.Token{}, adapter.ErrDeviceConflict)

	err := svc.EnsureSession(context.Background())
	assert.ErrorIs(t, err, adapter.ErrDeviceConflict)
}

func TestClientAuthService_EnsureSession_TransportErrorNoRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)

	// сетевая ошибка — не повод регистрироваться заново
	mockAdapter.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.Token{}, errors.New("connection refused"))

	err := svc.EnsureSession(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, adapter.ErrUnauthorized)
}
