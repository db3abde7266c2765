package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/journey-search-api/internal/adapter/http/response"
)

func newContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// logEntries decodes every JSON line written to buf.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log line should be valid JSON")
		entries = append(entries, entry)
	}
	return entries
}

func findEntry(entries []map[string]interface{}, message string) map[string]interface{} {
	for _, entry := range entries {
		if entry["message"] == message {
			return entry
		}
	}
	return nil
}

// =====================================================
// Request ID Middleware Tests
// =====================================================

func TestRequestID_GeneratesNewID(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/flight")

	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))

	reqID := rec.Header().Get(RequestIDHeader)
	assert.Len(t, reqID, 36, "should be UUID format (36 chars)")
	assert.Equal(t, reqID, GetRequestID(c), "context ID should match header ID")
}

func TestRequestID_GeneratesDistinctIDs(t *testing.T) {
	handler := RequestID()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	c1, rec1 := newContext(http.MethodGet, "/")
	c2, rec2 := newContext(http.MethodGet, "/")
	require.NoError(t, handler(c1))
	require.NoError(t, handler(c2))

	assert.NotEqual(t, rec1.Header().Get(RequestIDHeader), rec2.Header().Get(RequestIDHeader))
}

func TestRequestID_PropagatesExistingID(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/flight")
	c.Request().Header.Set(RequestIDHeader, "existing-request-id-12345")

	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))

	assert.Equal(t, "existing-request-id-12345", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "existing-request-id-12345", GetRequestID(c))
}

func TestGetRequestID_ReturnsEmptyWhenNotSet(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/")

	assert.Empty(t, GetRequestID(c))
}

// =====================================================
// Request Logging Middleware Tests
// =====================================================

func TestRequestLogger_LogsRequestDetails(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)

	c, _ := newContext(http.MethodGet, "/api/flight?origin=MZL&destination=BCN")
	c.Request().Header.Set("User-Agent", "TestAgent/1.0")
	c.Request().Header.Set("X-Real-IP", "192.168.1.100")
	c.Set(requestIDKey, "test-req-id-123")

	handler := RequestLogger(log)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))

	entries := logEntries(t, &logBuf)
	require.Len(t, entries, 1)
	entry := entries[0]

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "test-req-id-123", entry["request_id"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/flight", entry["path"])
	assert.Equal(t, "origin=MZL&destination=BCN", entry["query"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, float64(2), entry["bytes_out"])
	assert.Equal(t, "192.168.1.100", entry["client_ip"])
	assert.Equal(t, "TestAgent/1.0", entry["user_agent"])
	assert.Contains(t, entry, "duration_ms")
	assert.Equal(t, "HTTP request", entry["message"])
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success", http.StatusOK, "info"},
		{"bad request", http.StatusBadRequest, "warn"},
		{"not found", http.StatusNotFound, "warn"},
		{"internal error", http.StatusInternalServerError, "error"},
		{"service unavailable", http.StatusServiceUnavailable, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			c, _ := newContext(http.MethodGet, "/api/flight")

			handler := RequestLogger(zerolog.New(&logBuf))(func(c echo.Context) error {
				return c.String(tt.status, "body")
			})
			require.NoError(t, handler(c))

			entries := logEntries(t, &logBuf)
			require.Len(t, entries, 1)
			assert.Equal(t, float64(tt.status), entries[0]["status"])
			assert.Equal(t, tt.wantLevel, entries[0]["level"])
		})
	}
}

func TestRequestLogger_HandlesReturnedError(t *testing.T) {
	var logBuf bytes.Buffer
	c, rec := newContext(http.MethodGet, "/api/flight")

	handler := RequestLogger(zerolog.New(&logBuf))(func(c echo.Context) error {
		return errors.New("write failed")
	})

	require.NoError(t, handler(c), "error should be handled by echo, not returned")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entries := logEntries(t, &logBuf)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(500), entries[0]["status"])
	assert.Equal(t, "error", entries[0]["level"])
}

// =====================================================
// Recovery Middleware Tests
// =====================================================

func TestRecover_ReturnsPlainText500(t *testing.T) {
	var logBuf bytes.Buffer
	c, rec := newContext(http.MethodGet, "/api/flight")

	handler := Recover(zerolog.New(&logBuf))(func(c echo.Context) error {
		panic("test panic")
	})

	assert.NotPanics(t, func() {
		require.NoError(t, handler(c))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, response.MsgInternalError, rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain)
	assert.NotContains(t, rec.Body.String(), "test panic", "panic value must not leak to the client")
}

func TestRecover_LogsPanicWithStackTrace(t *testing.T) {
	var logBuf bytes.Buffer
	c, _ := newContext(http.MethodGet, "/api/flight")
	c.Set(requestIDKey, "stack-test-id")

	handler := Recover(zerolog.New(&logBuf))(func(c echo.Context) error {
		panic("stack trace test panic")
	})
	_ = handler(c)

	entries := logEntries(t, &logBuf)
	require.Len(t, entries, 1)
	entry := entries[0]

	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "stack-test-id", entry["request_id"])
	assert.Equal(t, "stack trace test panic", entry["panic"])
	stack, ok := entry["stack"].(string)
	require.True(t, ok)
	assert.Contains(t, stack, "goroutine")
	assert.Equal(t, "Panic recovered", entry["message"])
}

func TestRecover_HandlesErrorPanic(t *testing.T) {
	var logBuf bytes.Buffer
	c, rec := newContext(http.MethodGet, "/api/flight")

	handler := Recover(zerolog.New(&logBuf))(func(c echo.Context) error {
		panic(errors.New("boom"))
	})

	assert.NotPanics(t, func() {
		_ = handler(c)
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	entries := logEntries(t, &logBuf)
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0]["panic"])
}

func TestRecover_PassesThroughNormalRequests(t *testing.T) {
	var logBuf bytes.Buffer
	c, rec := newContext(http.MethodGet, "/api/flight")

	handler := Recover(zerolog.New(&logBuf))(func(c echo.Context) error {
		return c.String(http.StatusOK, "normal response")
	})

	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "normal response", rec.Body.String())
	assert.Empty(t, logBuf.String(), "should not log anything for normal requests")
}

func TestRecover_CommittedResponseIsLeftAlone(t *testing.T) {
	var logBuf bytes.Buffer
	c, rec := newContext(http.MethodGet, "/api/flight")

	handler := Recover(zerolog.New(&logBuf))(func(c echo.Context) error {
		_ = c.String(http.StatusOK, "partial")
		panic("after write")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestRecoverWithConfig_DisableStack(t *testing.T) {
	var logBuf bytes.Buffer
	c, _ := newContext(http.MethodGet, "/api/flight")

	handler := RecoverWithConfig(zerolog.New(&logBuf), RecoveryConfig{DisableStack: true})(func(c echo.Context) error {
		panic("no stack test")
	})
	_ = handler(c)

	entries := logEntries(t, &logBuf)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0], "stack", "stack should not be logged when disabled")
}

// =====================================================
// Setup Tests - Middleware Chain
// =====================================================

func TestSetup_AppliesAllMiddleware(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	Setup(e, zerolog.New(&logBuf))

	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "setup test")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	reqID := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, reqID, "RequestID middleware should set header")

	entry := findEntry(logEntries(t, &logBuf), "HTTP request")
	require.NotNil(t, entry, "RequestLogger middleware should log")
	assert.Equal(t, reqID, entry["request_id"])
}

func TestSetup_RecoversPanicAndLogsFinalStatus(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	Setup(e, zerolog.New(&logBuf))

	e.GET("/panic", func(c echo.Context) error {
		panic("setup panic test")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, response.MsgInternalError, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	entries := logEntries(t, &logBuf)
	panicEntry := findEntry(entries, "Panic recovered")
	accessEntry := findEntry(entries, "HTTP request")
	require.NotNil(t, panicEntry)
	require.NotNil(t, accessEntry)
	assert.Equal(t, float64(500), accessEntry["status"])
	assert.Equal(t, panicEntry["request_id"], accessEntry["request_id"])
}

func TestSetupWithConfig_AppliesCustomConfig(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	SetupWithConfig(e, zerolog.New(&logBuf), RecoveryConfig{DisableStack: true})

	e.GET("/panic", func(c echo.Context) error {
		panic("config panic test")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	panicEntry := findEntry(logEntries(t, &logBuf), "Panic recovered")
	require.NotNil(t, panicEntry, "should have panic log entry")
	assert.NotContains(t, panicEntry, "stack", "stack should be disabled via config")
}
