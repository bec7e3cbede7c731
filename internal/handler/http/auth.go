package http

import (
	"net/http"

	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/utils"
	"github.com/MKhiriev/gophertalk/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	pair, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	logger.FromRequest(r).Info().Str("user_name", req.UserName).Msg("user registered")
	utils.WriteJSON(w, pair, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	pair, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, pair, http.StatusOK)
}

// refresh exchanges the refresh token from the Authorization header for a
// new pair.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	tokenString, err := bearerToken(r)
	if err != nil {
		log.Debug().Err(err).Send()
		utils.WriteDetail(w, detailMissingToken, http.StatusUnauthorized)
		return
	}

	pair, err := h.services.AuthService.Refresh(r.Context(), tokenString)
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, pair, http.StatusOK)
}
