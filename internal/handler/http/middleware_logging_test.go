package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging_WritesAccessLogEntry(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{
		logger:   &logger.Logger{Logger: zerolog.New(&buf)},
		traceIDs: utils.NewUUIDGenerator(),
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("created"))
	})

	req := httptest.NewRequest(http.MethodPost, "/posts?limit=1", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log: %s", buf.String())
	assert.Equal(t, "/posts?limit=1", entry["uri"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.Equal(t, float64(http.StatusCreated), entry["status"])
	assert.Equal(t, float64(len("created")), entry["size"])
	assert.Equal(t, "trace-1", entry["trace_id"])
	assert.Contains(t, entry, "duration")
}

func TestWithLogging_PassesResponseThrough(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Custom", "1")
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Custom"))
}
