// Package greeter implements the fixed-greeting HTTP surface: every GET
// request, on any path, receives the same HTML body.
package greeter

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/aelexs/greeter-service/internal/observability"
)

// Greeting is the response body for every GET request, byte for byte.
const Greeting = "<h1>Hello from Python!</h1>"

const instrumentationName = "github.com/aelexs/greeter-service/internal/greeter"

// Handler serves the greeting and records per-request metrics.
type Handler struct {
	requests metric.Int64Counter
	latency  metric.Float64Histogram
}

// NewHandler creates the greeting handler with instruments registered on the
// global meter provider.
func NewHandler() (*Handler, error) {
	meter := observability.Meter(instrumentationName)

	requests, err := meter.Int64Counter("greeter.requests",
		metric.WithDescription("Total greeting responses served"),
	)
	if err != nil {
		return nil, fmt.Errorf("create request counter: %w", err)
	}

	latency, err := meter.Float64Histogram("greeter.request.duration",
		metric.WithDescription("Greeting request duration"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create latency histogram: %w", err)
	}

	return &Handler{requests: requests, latency: latency}, nil
}

// ServeHTTP writes the greeting unconditionally: status 200, text/html,
// constant body. The request carries no input the handler inspects, so
// there is no per-request failure path.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	w.Header().Set("Content-type", "text/html")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, Greeting)

	h.requests.Add(r.Context(), 1)
	h.latency.Record(r.Context(), float64(time.Since(start).Microseconds())/1000.0)
}

// NewMux registers the greeting under the GET method pattern for every path.
// Non-GET methods get net/http's default 405 Method Not Allowed; no custom
// method handling exists.
func NewMux(h http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /", h)
	return mux
}
