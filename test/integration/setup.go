// Package integration provides helpers and integration tests for the journey search system.
// Integration tests drive the full echo stack (middleware, handler, use case)
// against either a test double or the flightapi provider over a fake upstream.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/flight-search/journey-search-api/internal/adapter/http"
	"github.com/flight-search/journey-search-api/internal/adapter/http/middleware"
	"github.com/flight-search/journey-search-api/internal/adapter/provider/flightapi"
	"github.com/flight-search/journey-search-api/internal/domain"
	"github.com/flight-search/journey-search-api/internal/usecase"
	"github.com/flight-search/journey-search-api/test/testutil"
)

// syncBuffer is a bytes.Buffer safe for concurrent log writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// TestServer wraps an Echo instance wired like the production server.
type TestServer struct {
	Echo *echo.Echo
	logs *syncBuffer
}

// NewTestServer creates a test server backed by finder.
func NewTestServer(finder domain.JourneyFinder) *TestServer {
	logs := &syncBuffer{}
	log := zerolog.New(logs).With().Timestamp().Logger()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, log)
	httpAdapter.RegisterRoutes(e, httpAdapter.NewJourneyHandler(usecase.NewJourneySearchUseCase(finder, log)))

	return &TestServer{
		Echo: e,
		logs: logs,
	}
}

// NewFlightAPITestServer creates a test server backed by the flightapi
// provider reading from a fake upstream that always answers status and body.
func NewFlightAPITestServer(t *testing.T, status int, body []byte, maxFlights int) (*TestServer, *testutil.Upstream) {
	t.Helper()

	upstream := testutil.NewUpstream(t, status, body)
	provider := flightapi.NewProvider(
		flightapi.NewHTTPSource(upstream.URL, upstream.Client()),
		&flightapi.Config{MaxFlights: maxFlights},
	)
	return NewTestServer(provider), upstream
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a GET request for target and returns the response.
func (ts *TestServer) Do(target string) Response {
	return ts.DoWithContext(context.Background(), target)
}

// DoWithContext executes a GET request for target carrying ctx.
func (ts *TestServer) DoWithContext(ctx context.Context, target string) Response {
	req := httptest.NewRequest(http.MethodGet, target, nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// JourneyRequest requests journeys between origin and destination.
func (ts *TestServer) JourneyRequest(origin, destination string) Response {
	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	return ts.Do("/api/flight?" + params.Encode())
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do("/health")
}

// Logs returns everything the server has logged so far.
func (ts *TestServer) Logs() string {
	return ts.logs.String()
}

// ParseJourneys parses the response body as a journeys payload.
func (r *Response) ParseJourneys() (domain.Journeys, error) {
	var journeys domain.Journeys
	if err := json.Unmarshal(r.Body, &journeys); err != nil {
		return nil, err
	}
	return journeys, nil
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}
