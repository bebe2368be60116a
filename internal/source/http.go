package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rdfview/internal/codec"
	"rdfview/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	maxErrorBody   = 512
)

// HTTPSource fetches a graph payload from the generator service. With
// triples set it posts them to the generate endpoint; otherwise it GETs
// a stored graph URL.
type HTTPSource struct {
	url     string
	triples string
	mode    domain.Mode
	client  *http.Client
}

// HTTPOption configures an HTTPSource
type HTTPOption func(*HTTPSource)

// WithClient sets the HTTP client used for requests
func WithClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		s.client = c
	}
}

// NewHTTPSource creates a source reading a stored graph payload
func NewHTTPSource(rawURL string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		url:    rawURL,
		client: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewGeneratorSource creates a source posting triples text to a generate
// endpoint
func NewGeneratorSource(endpoint, triples string, mode domain.Mode, opts ...HTTPOption) *HTTPSource {
	s := NewHTTPSource(endpoint, opts...)
	s.triples = triples
	s.mode = mode
	return s
}

func (s *HTTPSource) String() string {
	return s.url
}

// Fetch performs the request and decodes the JSON payload
func (s *HTTPSource) Fetch(ctx context.Context) (*domain.Graph, error) {
	req, err := s.newRequest(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: build request for %s: %w", domain.ErrDataSource, s.url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDataSource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: %s returned %s: %s",
			domain.ErrDataSource, s.url, resp.Status, strings.TrimSpace(string(body)))
	}

	g, err := codec.NewJSONCodec().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDataSource, s.url, err)
	}
	return g, nil
}

func (s *HTTPSource) newRequest(ctx context.Context) (*http.Request, error) {
	if s.triples == "" {
		return http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	}

	form := url.Values{}
	form.Set("triples", s.triples)
	form.Set("mode", string(s.mode))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}
