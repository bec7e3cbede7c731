package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/utils"
)

// auth enforces an access token on every wrapped route and stores the
// caller's id in the request context (see [utils.WithUserID]).
//
// A missing or malformed header is answered with 401 "Missing token", a token
// that does not verify (bad signature, expired, refresh type) with 401
// "Invalid token".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := bearerToken(r)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteDetail(w, detailMissingToken, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseAccessToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("access token rejected")
			utils.WriteDetail(w, detailInvalidToken, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}

	return tokenString, nil
}

// callerID returns the id stored by auth. Handlers behind auth can rely on it.
func callerID(r *http.Request) int64 {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	return userID
}
