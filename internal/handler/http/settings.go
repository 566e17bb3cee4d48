package http

import (
	"net/http"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/settings"
	"github.com/acceso-labs/acceso-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	Config(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{settingsService: settingsService}
}

// Config handles GET /config
func (h *settingsHandlerImpl) Config(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.settingsService.Config(ctx)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
