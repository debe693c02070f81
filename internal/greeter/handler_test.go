package greeter_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aelexs/greeter-service/internal/greeter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	h, err := greeter.NewHandler()
	require.NoError(t, err)
	return greeter.NewMux(h)
}

func TestGreetingResponse(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"root path", "/"},
		{"arbitrary path", "/anything/else"},
		{"deep path", "/a/b/c/d"},
		{"path with query", "/?foo=bar"},
	}

	mux := newTestMux(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))
			assert.Equal(t, greeter.Greeting, rec.Body.String())
		})
	}
}

func TestGreetingBodyIsExact(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	// No trailing newline, no charset suffix on the header.
	assert.Equal(t, "<h1>Hello from Python!</h1>", rec.Body.String())
	assert.Equal(t, len(greeter.Greeting), rec.Body.Len())
}

func TestNonGETMethodNotAllowed(t *testing.T) {
	tests := []struct {
		name   string
		method string
	}{
		{"POST", http.MethodPost},
		{"PUT", http.MethodPut},
		{"DELETE", http.MethodDelete},
		{"PATCH", http.MethodPatch},
	}

	mux := newTestMux(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestRepeatedRequestsOnPersistentConnection(t *testing.T) {
	srv := httptest.NewServer(newTestMux(t))
	defer srv.Close()

	client := srv.Client()

	// The default transport reuses the connection across sequential
	// requests; each response must be identical and independent.
	for i := 0; i < 5; i++ {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+"/", nil)
		require.NoError(t, err)

		resp, err := client.Do(req)
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/html", resp.Header.Get("Content-Type"))
		assert.Equal(t, greeter.Greeting, string(body))
	}
}
