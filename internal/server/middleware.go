package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aelexs/greeter-service/internal/observability"
)

const instrumentationName = "github.com/aelexs/greeter-service/internal/server"

// statusWriter captures the status code written by the wrapped handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// requestMiddleware assigns each request a UUID, opens a server span, and
// emits one access log record when the handler returns. The request ID is
// echoed in X-Request-Id.
func requestMiddleware(next http.Handler, logger *slog.Logger) http.Handler {
	tracer := observability.Tracer(instrumentationName)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path)
		defer span.End()

		w.Header().Set("X-Request-Id", requestID)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r.WithContext(ctx))

		accessLogger := logger
		if traceID := observability.TraceIDFromContext(ctx); traceID != "" {
			accessLogger = accessLogger.With(slog.String("trace_id", traceID))
		}
		accessLogger.Info("request",
			slog.String("request_id", requestID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", sw.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
