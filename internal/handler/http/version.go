package http

import (
	"net/http"

	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/utils"
)

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// health answers 503 while the database does not respond to a ping.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("health check failed")
		utils.WriteJSON(w, healthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}
