package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "object", data: map[string]int64{"id": 1}, status: http.StatusCreated, wantBody: `{"id":1}`},
		{name: "empty list", data: []string{}, status: http.StatusOK, wantBody: `[]`},
		{name: "null", data: nil, status: http.StatusOK, wantBody: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteDetail(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		w := httptest.NewRecorder()

		WriteDetail(w, "Post not found", http.StatusNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"Post not found"}`, w.Body.String())
	})

	t.Run("field problems", func(t *testing.T) {
		w := httptest.NewRecorder()
		problems := []map[string]any{{"loc": []string{"body", "text"}, "msg": "Field required", "type": "missing"}}

		WriteDetail(w, problems, http.StatusUnprocessableEntity)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"detail":[{"loc":["body","text"],"msg":"Field required","type":"missing"}]}`, w.Body.String())
	})
}
