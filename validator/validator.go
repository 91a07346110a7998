// Package validator talks to an external Peppol document validation
// service over HTTP. The codec's guarantee is that conformant output
// always validates; this client is the harness used to verify it.
package validator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Result statuses reported by the validation service.
const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
	StatusError   = "error"
)

// Result is the validation service's verdict on a single document.
type Result struct {
	Result string  `json:"result"`
	Errors []Issue `json:"errors,omitempty"`
}

// Valid reports whether the document passed validation.
func (r *Result) Valid() bool {
	return r.Result == StatusValid
}

// Issue is a single validation failure.
type Issue struct {
	Rule     string `json:"rule,omitempty"`
	Severity string `json:"severity,omitempty"`
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
}

// Client submits UBL payloads to a validation endpoint.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a client for the validation service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validate submits a UBL payload for validation. It is a single
// best-effort round trip; retry policy belongs to the caller.
func (c *Client) Validate(ctx context.Context, xmlData []byte) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/validate", bytes.NewReader(xmlData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/xml")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling validation service: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading validation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("validation service returned status %d", resp.StatusCode)
	}

	out := new(Result)
	if err := json.Unmarshal(body, out); err != nil {
		return nil, fmt.Errorf("decoding validation response: %w", err)
	}

	c.log.Debug().
		Str("result", out.Result).
		Int("issues", len(out.Errors)).
		Dur("elapsed", time.Since(start)).
		Msg("document validated")

	return out, nil
}
