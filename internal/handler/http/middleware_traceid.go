package http

import (
	"net/http"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLen bounds client supplied ids that end up in every log line.
	maxTraceIDLen = 128
)

// withTraceID puts a child logger carrying trace_id into the request context
// and echoes the id in X-Trace-ID. The id is, in order of preference, the
// X-Trace-ID header, the trace id of an incoming traceparent, or a new UUID.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := h.requestTraceID(r)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) requestTraceID(r *http.Request) string {
	if id := r.Header.Get(traceIDHeader); id != "" && len(id) <= maxTraceIDLen {
		return id
	}

	remote := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	if sc := trace.SpanContextFromContext(remote); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	return h.traceIDs.Generate()
}
