package http

import (
	"errors"
	"net/http"

	"github.com/avoronin/scanledger/internal/service"
	"github.com/avoronin/scanledger/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrWrongSecret:           http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	store.ErrDeviceAlreadyExists: http.StatusConflict,
	store.ErrDeviceNotFound:      http.StatusNotFound,
	store.ErrSnapshotNotFound:    http.StatusNotFound,
	store.ErrSnapshotNotSaved:    http.StatusInternalServerError,
	store.ErrStorageUnavailable:  http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
