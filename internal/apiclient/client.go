// Package apiclient talks to the CampusConnect REST backend. Every method
// issues exactly one HTTP request and never retries.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
	applog "github.com/yigit/campusconnect/internal/pkg/logger"
)

// RequestIDHeader carries a per-call id for log correlation
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of an error response is kept
const maxErrorBody = 64 << 10

// TokenSource yields the session token to send with authenticated calls.
// An empty string means no token is attached.
type TokenSource interface {
	Token(ctx context.Context) string
}

// TokenFunc adapts a function to TokenSource
type TokenFunc func(ctx context.Context) string

// Token implements TokenSource
func (f TokenFunc) Token(ctx context.Context) string { return f(ctx) }

// Config holds client settings
type Config struct {
	BaseURL string
	// TokenHeader names the header that carries the raw token
	TokenHeader string
	// Timeout applies to the whole call. Zero means no limit.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is the backend API client
type Client struct {
	baseURL     string
	tokenHeader string
	httpClient  *http.Client
	tokens      TokenSource
	logger      zerolog.Logger
}

// New creates a Client. tokens may be nil for a client that only calls
// public endpoints.
func New(cfg Config, tokens TokenSource, logger zerolog.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	header := cfg.TokenHeader
	if header == "" {
		header = "Authorization"
	}
	if tokens == nil {
		tokens = TokenFunc(func(context.Context) string { return "" })
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		tokenHeader: header,
		httpClient:  httpClient,
		tokens:      tokens,
		logger:      applog.Component(logger, "apiclient"),
	}
}

// call describes one backend request
type call struct {
	method string
	path   string
	query  url.Values
	body   interface{}
	auth   bool
}

// do issues the request and decodes a 2xx body into out when out is non-nil
func (c *Client) do(ctx context.Context, cl call, out interface{}) error {
	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		payload, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", cl.method, cl.path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", cl.method, cl.path, err)
	}
	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.auth {
		if token := c.tokens.Token(ctx); token != "" {
			req.Header.Set(c.tokenHeader, token)
		}
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("requestId", requestID).Str("method", cl.method).Str("path", cl.path).Msg("Backend call failed")
		return fmt.Errorf("%w: %s %s: %v", apperrors.ErrTransport, cl.method, cl.path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("requestId", requestID).
		Str("method", cl.method).
		Str("path", cl.path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("Backend call completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &apperrors.APIError{
			Method:     cl.method,
			Path:       cl.path,
			StatusCode: resp.StatusCode,
			Body:       raw,
		}
		var eb dto.ErrorBody
		if json.Unmarshal(raw, &eb) == nil {
			apiErr.Message = eb.Text()
		} else if text := strings.TrimSpace(string(raw)); len(text) > 0 && len(text) < 200 {
			apiErr.Message = text
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read %s %s: %v", apperrors.ErrTransport, cl.method, cl.path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", apperrors.ErrDecode, cl.method, cl.path, err)
	}
	return nil
}
