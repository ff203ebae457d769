package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestID(t *testing.T) {
	t.Run("generates UUID when no header provided", func(t *testing.T) {
		var capturedID string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedID = GetRequestID(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/v1/iban/validate", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Len(t, capturedID, 36) // UUID format
		assert.Equal(t, capturedID, w.Header().Get("X-Request-ID"))
	})

	t.Run("accepts valid client-provided ID", func(t *testing.T) {
		var capturedID string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedID = GetRequestID(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/v1/iban/validate", nil)
		req.Header.Set("X-Request-ID", "trace.span_1234")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, "trace.span_1234", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "trace.span_1234", capturedID)
	})

	t.Run("replaces unsafe IDs", func(t *testing.T) {
		tests := []struct {
			name string
			id   string
		}{
			{"too long", strings.Repeat("a", MaxRequestIDLength+1)},
			{"newline", "valid\ninjected-log-line"},
			{"spaces", "request id"},
			{"quotes", `request"id`},
			{"angle brackets", "request<id>"},
			{"semicolon", "request;id"},
			{"null byte", "request\x00id"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				handler := RequestID(http.HandlerFunc(okHandler))

				req := httptest.NewRequest(http.MethodGet, "/v1/iban/validate", nil)
				req.Header.Set("X-Request-ID", tt.id)
				w := httptest.NewRecorder()
				handler.ServeHTTP(w, req)

				resultID := w.Header().Get("X-Request-ID")
				assert.NotEqual(t, tt.id, resultID)
				assert.Len(t, resultID, 36)
			})
		}
	})

	t.Run("accepts ID at exactly max length", func(t *testing.T) {
		handler := RequestID(http.HandlerFunc(okHandler))

		maxLengthID := strings.Repeat("a", MaxRequestIDLength)
		req := httptest.NewRequest(http.MethodGet, "/v1/iban/validate", nil)
		req.Header.Set("X-Request-ID", maxLengthID)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, maxLengthID, w.Header().Get("X-Request-ID"))
	})

	t.Run("empty when not set", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, "", GetRequestID(req.Context()))
	})
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := RequestID(Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	req := httptest.NewRequest(http.MethodPost, "/v1/iban/build", nil)
	req.Header.Set("X-Request-ID", "panic-1")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), `"msg":"panic recovered"`)
	assert.Contains(t, buf.String(), `"request_id":"panic-1"`)
}

func TestLogger(t *testing.T) {
	t.Run("logs request with status", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		handler := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))

		req := httptest.NewRequest(http.MethodPost, "/v1/iban/validate", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "http request", entry["msg"])
		assert.Equal(t, "/v1/iban/validate", entry["path"])
		assert.EqualValues(t, http.StatusUnprocessableEntity, entry["status"])
	})

	t.Run("skips healthy probes", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		handler := Logger(logger)(http.HandlerFunc(okHandler))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", nil))
		assert.Empty(t, buf.String())
	})
}

func TestContentTypeJSON(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		contentType string
		status      int
	}{
		{"json", http.MethodPost, "application/json", http.StatusOK},
		{"json with charset", http.MethodPost, "application/json; charset=utf-8", http.StatusOK},
		{"missing header", http.MethodPost, "", http.StatusOK},
		{"form", http.MethodPost, "application/x-www-form-urlencoded", http.StatusUnsupportedMediaType},
		{"malformed", http.MethodPost, "application/", http.StatusUnsupportedMediaType},
		{"GET is not checked", http.MethodGet, "text/plain", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := ContentTypeJSON(http.HandlerFunc(okHandler))
			req := httptest.NewRequest(tt.method, "/v1/iban/validate", strings.NewReader("{}"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestBodyLimit(t *testing.T) {
	var readErr error
	handler := BodyLimit(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"iban":"DE89370400440532013000"}`))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var tooLarge *http.MaxBytesError
	assert.ErrorAs(t, readErr, &tooLarge)
}

func TestTimeout(t *testing.T) {
	handler := Timeout(10 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLatency(t *testing.T) {
	m := NewMetricsWith(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(Latency(m))
	r.Get("/v1/countries/{code}", okHandler)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/countries/DE", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/countries/FR", nil))

	assert.Equal(t, 1, testutil.CollectAndCount(m.EndpointLatency))
	assert.Equal(t, 1, testutil.CollectAndCount(m.EndpointLatency, "ibankit_endpoint_latency_seconds"))

	t.Run("nil metrics", func(t *testing.T) {
		handler := Latency(nil)(http.HandlerFunc(okHandler))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
