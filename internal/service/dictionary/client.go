package dictionary

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/errors"
)

const (
	// DefaultBaseURL is the English entries endpoint of dictionaryapi.dev.
	DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en/"

	userAgent    = "dictionary-api"
	acceptHeader = "application/json"

	// maxBodyBytes bounds how much of an upstream body is buffered.
	maxBodyBytes = 5 << 20

	resultSuccess = "success"
)

// Recorder receives the outcome of every upstream lookup.
type Recorder interface {
	ObserveLookup(result string, elapsed time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveLookup(string, time.Duration) {}

// Client implements Service over HTTP. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	recorder   Recorder
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the entry URL prefix (useful for testing). A trailing slash is added when missing.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/") + "/"
	}
}

// WithRecorder reports lookup outcomes to r.
func WithRecorder(r Recorder) Option {
	return func(c *Client) {
		if r != nil {
			c.recorder = r
		}
	}
}

// NewClient creates a dictionary client. A nil httpClient uses http.DefaultClient.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		httpClient: httpClient,
		baseURL:    DefaultBaseURL,
		recorder:   noopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup fetches the entries for word. Any non-2xx status, transport failure or
// non-JSON body is returned as an *UpstreamError.
func (c *Client) Lookup(ctx context.Context, word string) (json.RawMessage, error) {
	start := time.Now()
	body, err := c.lookup(ctx, word)

	result := resultSuccess
	if err != nil {
		result = string(KindOf(err))
	}
	c.recorder.ObserveLookup(result, time.Since(start))
	return body, err
}

func (c *Client) entryURL(word string) string {
	return c.baseURL + url.PathEscape(word)
}

func (c *Client) lookup(ctx context.Context, word string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.entryURL(word), http.NoBody)
	if err != nil {
		return nil, &UpstreamError{Kind: KindTransport, cause: errors.Wrap(err, "create request")}
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Kind: KindTransport, cause: errors.Wrap(err, "send request")}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &UpstreamError{Kind: KindStatus, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, &UpstreamError{Kind: KindTransport, cause: errors.Wrap(err, "read body")}
	}
	if len(body) > maxBodyBytes {
		return nil, &UpstreamError{Kind: KindMalformed, cause: errors.Errorf("body exceeds %d bytes", maxBodyBytes)}
	}
	if !json.Valid(body) {
		return nil, &UpstreamError{Kind: KindMalformed, cause: errors.New("body is not valid JSON")}
	}
	return json.RawMessage(body), nil
}

// Compile-time interface check
var _ Service = (*Client)(nil)
