package http

import (
	"encoding/json"
	"net/http"

	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/internal/utils"
	"github.com/avoronin/scanledger/models"
)

func (h *Handler) pushSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	deviceID, found := utils.GetDeviceIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.pushSnapshot").Msg("no device ID was given")
		http.Error(w, "no device ID was given", http.StatusBadRequest)
		return
	}

	var pushRequest models.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&pushRequest); err != nil {
		log.Err(err).Str("func", "*Handler.pushSnapshot").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.SnapshotService.Push(ctx, deviceID, pushRequest); err != nil {
		log.Err(err).Str("func", "*Handler.pushSnapshot").Msg("error storing ledger snapshot")
		http.Error(w, "error storing ledger snapshot", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) getSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	deviceID, found := utils.GetDeviceIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getSnapshot").Msg("no device ID was given")
		http.Error(w, "no device ID was given", http.StatusBadRequest)
		return
	}

	snapshot, err := h.services.SnapshotService.Get(ctx, deviceID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSnapshot").Msg("error getting ledger snapshot")
		http.Error(w, "error getting ledger snapshot", statusFromError(err))
		return
	}

	utils.WriteJSON(w, snapshot, http.StatusOK)
}
