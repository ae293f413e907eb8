package update_setting

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/service/settings"
	"github.com/m04kA/SMC-ConsultationService/internal/service/settings/models"
)

const msgInvalidRequestBody = "Invalid request body"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

type updateResponse struct {
	Success bool                    `json:"success"`
	Setting *models.SettingResponse `json:"setting"`
}

// Handle PUT /api/settings/{key}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var req models.UpdateSettingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/{key} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	setting, err := h.service.Update(r.Context(), key, &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /settings/{key} - Failed to update setting: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, updateResponse{Success: true, Setting: setting})
}
