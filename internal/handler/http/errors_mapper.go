package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/service"
	"github.com/MKhiriev/gophertalk/internal/store"
	"github.com/MKhiriev/gophertalk/internal/utils"
	"github.com/MKhiriev/gophertalk/internal/validators"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is checked top to bottom; the first match wins.
var errorStatuses = []errorStatus{
	{validators.ErrInvalidInput, http.StatusUnprocessableEntity},

	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},

	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrPostNotFound, http.StatusNotFound},
	{store.ErrLikeNotFound, http.StatusNotFound},

	{store.ErrUserAlreadyExists, http.StatusBadRequest},
	{store.ErrReplyToPostNotFound, http.StatusBadRequest},
	{store.ErrPostAlreadyLiked, http.StatusBadRequest},
	{store.ErrPostAlreadyViewed, http.StatusBadRequest},

	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{service.ErrPasswordHashingFailed, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// statusFromError returns the status and the detail message for err.
// Unmatched errors get fallback and its status text.
func statusFromError(err error, fallback int) (int, string) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			if es.status >= http.StatusInternalServerError {
				return es.status, http.StatusText(es.status)
			}
			return es.status, es.target.Error()
		}
	}
	return fallback, http.StatusText(fallback)
}

// writeError renders err. Validation failures keep their field list as the
// detail.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback int) {
	log := logger.FromRequest(r)

	var verrs validators.ValidationErrors
	if errors.As(err, &verrs) {
		log.Debug().Err(err).Msg("request rejected by validation")
		utils.WriteDetail(w, verrs, http.StatusUnprocessableEntity)
		return
	}

	status, detail := statusFromError(err, fallback)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteDetail(w, detail, status)
}
