package flightapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/flight-search/journey-search-api/internal/domain"
)

// Caller-facing messages for unavailable sources.
const (
	MsgUpstreamUnreachable = "Flight provider is unreachable."
	MsgUpstreamStatus      = "Flight provider responded with status %d."
	MsgDataFileUnreadable  = "Flight data is unavailable."
)

// DefaultTimeout bounds a single upstream request.
const DefaultTimeout = 5 * time.Second

// Source supplies the full list of flights the planner works on.
type Source interface {
	// Fetch returns every known flight.
	Fetch(ctx context.Context) ([]domain.Flight, error)
}

// HTTPSource fetches flights from an upstream flights API.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates an HTTPSource for url.
// If client is nil, a client with DefaultTimeout is used.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPSource{
		url:    url,
		client: client,
	}
}

// Fetch implements Source.Fetch.
func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.Flight, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, domain.NewProviderUnavailableError(MsgUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, domain.NewProviderUnavailableError(
			fmt.Sprintf(MsgUpstreamStatus, resp.StatusCode),
			fmt.Errorf("GET %s: %s", s.url, resp.Status),
		)
	}

	return decodeFlights(resp.Body)
}

// FileSource reads flights from a local JSON document with the upstream format.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch implements Source.Fetch.
func (s *FileSource) Fetch(ctx context.Context) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, domain.NewProviderUnavailableError(MsgDataFileUnreadable, err)
	}
	defer f.Close()

	return decodeFlights(f)
}

// Ensure sources implement Source at compile time.
var (
	_ Source = (*HTTPSource)(nil)
	_ Source = (*FileSource)(nil)
)
