package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogger(t *testing.T) {
	assert.Same(t, slog.Default(), GetLogger(context.Background()))

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, logger, GetLogger(WithLogger(context.Background(), logger)))
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var ctxLogger *slog.Logger
	h := chimiddleware.RequestID(LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = GetLogger(r.Context())
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"NOT_FOUND"}}`))
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/progress/complete", strings.NewReader(`{"day_number":1}`))
	req.Header.Set("Authorization", "Bearer secret")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.NotNil(t, ctxLogger)
	assert.NotSame(t, logger, ctxLogger)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	out := buf.String()
	assert.Contains(t, out, `"msg":"Request started"`)
	assert.Contains(t, out, `"msg":"Request completed"`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"req_id"`)
	assert.Contains(t, out, `{\"day_number\":1}`)
	assert.Contains(t, out, "[SENSITIVE]")
	assert.NotContains(t, out, "Bearer secret")
}

type recordedRequest struct {
	method, route string
	status        int
}

type fakeRecorder struct {
	requests []recordedRequest
}

func (f *fakeRecorder) IncProgressInitialized() {}
func (f *fakeRecorder) IncDayCompleted(int)     {}
func (f *fakeRecorder) IncReplayEntered()       {}
func (f *fakeRecorder) IncProgressReset()       {}
func (f *fakeRecorder) IncReplaceConflict()     {}
func (f *fakeRecorder) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	f.requests = append(f.requests, recordedRequest{method: method, route: route, status: status})
}

func TestMetricsMiddleware(t *testing.T) {
	rec := &fakeRecorder{}
	r := chi.NewRouter()
	r.Use(MetricsMiddleware(rec))
	r.Get("/api/progress", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/api/progress", "/api/unknown"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, rec.requests, 2)
	assert.Equal(t, recordedRequest{method: "GET", route: "/api/progress", status: 200}, rec.requests[0])
	assert.Equal(t, http.StatusNotFound, rec.requests[1].status)
}
