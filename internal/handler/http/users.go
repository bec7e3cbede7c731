package http

import (
	"net/http"

	"github.com/MKhiriev/gophertalk/internal/utils"
	"github.com/MKhiriev/gophertalk/internal/validators"
	"github.com/MKhiriev/gophertalk/models"
)

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	page := q.pagination(defaultUsersLimit)
	if err := q.err(); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	users, err := h.services.UserService.GetUsers(r.Context(), page)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, validators.FieldUserID)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, validators.FieldUserID)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	var req models.UpdateUserRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), callerID(r), userID, req)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, validators.FieldUserID)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), callerID(r), userID); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
