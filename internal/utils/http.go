package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the JSON error body of the API. Detail is either a
// message string or a list of field validation problems.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, posts, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteDetail writes an error body of the form {"detail": detail}.
//
//	WriteDetail(w, "Post not found", http.StatusNotFound)
func WriteDetail(w http.ResponseWriter, detail any, statusCode int) {
	_, _ = WriteJSON(w, ErrorResponse{Detail: detail}, statusCode)
}
