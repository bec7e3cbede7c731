package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("server")
	l.Logger = l.Output(&buf)

	l.Info().Str("user_id", "7").Msg("post created")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "post created", entry["message"])
	assert.Equal(t, "7", entry["user_id"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		name    string
		level   string
		start   zerolog.Level
		want    zerolog.Level
		wantErr bool
	}{
		{name: "warn", level: "warn", start: zerolog.DebugLevel, want: zerolog.WarnLevel},
		{name: "error", level: "error", start: zerolog.DebugLevel, want: zerolog.ErrorLevel},
		{name: "empty keeps current", level: "", start: zerolog.InfoLevel, want: zerolog.InfoLevel},
		{name: "unknown", level: "loud", start: zerolog.InfoLevel, want: zerolog.InfoLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zerolog.SetGlobalLevel(tt.start)

			err := SetLevel(tt.level)

			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid log level")
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestNewClientLogger(t *testing.T) {
	t.Run("appends to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "client.log")

		NewClientLogger("client", path).Info().Msg("first")
		NewClientLogger("client", path).Info().Msg("second")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"role":"client"`)
		assert.Contains(t, string(data), "first")
		assert.Contains(t, string(data), "second")
	})

	t.Run("unwritable path discards", func(t *testing.T) {
		l := NewClientLogger("client", filepath.Join(t.TempDir(), "no", "such", "client.log"))
		require.NotNil(t, l)
		assert.Equal(t, zerolog.Disabled, l.GetLevel())
	})
}

func TestNop(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Zero(t, buf.Len())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "server").Logger()}

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("handler", "posts").Logger()
	child.Info().Msg("child")

	assert.NotSame(t, parent, child)
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "posts", entry["handler"])
}

func TestFromContextAndRequest(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("trace_id", "abc").Logger().WithContext(t.Context())

	t.Run("context", func(t *testing.T) {
		buf.Reset()
		FromContext(ctx).Info().Msg("ctx")
		assert.Equal(t, "abc", decodeEntry(t, &buf)["trace_id"])
	})

	t.Run("request", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequestWithContext(ctx, http.MethodGet, "/posts", nil)
		FromRequest(req).Info().Msg("req")
		assert.Equal(t, "abc", decodeEntry(t, &buf)["trace_id"])
	})

	t.Run("empty context is usable", func(t *testing.T) {
		l := FromContext(t.Context())
		require.NotNil(t, l)
		assert.NotPanics(t, func() { l.Info().Msg("nowhere") })
	})
}

func TestStdLogger_WritesThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}

	l.StdLogger().Print("http: TLS handshake error")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "http: TLS handshake error", entry["message"])
	assert.Equal(t, "stdlog", entry["source"])
}
