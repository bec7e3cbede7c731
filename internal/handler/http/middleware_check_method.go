// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/gophertalk/internal/utils"
)

// notFound replaces chi's plain-text 404 with a {"detail": ...} body so
// that every error of the API has the same shape.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteDetail(w, "Not Found", http.StatusNotFound)
}

// methodNotAllowed is registered via [chi.Mux.MethodNotAllowed].
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteDetail(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}
