// Package api is the gateway to the remote REST API. Every request goes through Client.Do,
// which attaches the bearer token and normalizes the response into a Result or an APIError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/metrics"

	"github.com/tidwall/gjson"
)

const backendLabel = "api"

// ResultKind tells how a successful response body was interpreted.
type ResultKind int

const (
	// ResultEmpty is a 204 response.
	ResultEmpty ResultKind = iota
	// ResultJSON is a response with a JSON content type.
	ResultJSON
	// ResultText is any other response, kept as raw text.
	ResultText
)

// Result is a normalized successful response.
type Result struct {
	Kind   ResultKind
	Status int
	Body   []byte
}

// JSON returns the parsed body. Empty and text results yield a non-existent value.
func (r *Result) JSON() gjson.Result {
	if r == nil || r.Kind != ResultJSON {
		return gjson.Result{}
	}

	return gjson.ParseBytes(r.Body)
}

// Text returns the raw body.
func (r *Result) Text() string {
	if r == nil {
		return ""
	}

	return string(r.Body)
}

// Payload is a request body.
type Payload interface {
	// Encode returns the body and, for multipart payloads, its content type.
	Encode() (body io.Reader, contentType string, err error)
}

type jsonPayload struct {
	v any
}

// JSONBody encodes v as the JSON request body.
func JSONBody(v any) Payload {
	return jsonPayload{v: v}
}

func (p jsonPayload) Encode() (io.Reader, string, error) {
	raw, err := json.Marshal(p.v)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to encode request body")
	}

	return bytes.NewReader(raw), "", nil
}

// Config holds client configuration.
type Config struct {
	BaseURL string
	// Timeout bounds each request; zero leaves requests bounded only by their context.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is the remote REST API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     service.TokenSource
	logger     *slog.Logger
}

// NewClient creates a new REST API client. tokens supplies the bearer token of the current session.
func NewClient(cfg Config, tokens service.TokenSource, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("api base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		logger:     logger,
	}, nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Result, error) {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	return c.Do(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request.
func (c *Client) Post(ctx context.Context, path string, body Payload) (*Result, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

// Patch issues a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body Payload) (*Result, error) {
	return c.Do(ctx, http.MethodPatch, path, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Result, error) {
	return c.Do(ctx, http.MethodDelete, path, nil)
}

// Do sends a request to path, relative to the base URL.
// Non-2xx responses become *domainerrors.APIError carrying the response text.
func (c *Client) Do(ctx context.Context, method, path string, body Payload) (*Result, error) {
	var (
		reader      io.Reader
		contentType = "application/json"
	)
	if body != nil {
		r, ct, err := body.Encode()
		if err != nil {
			return nil, err
		}
		reader = r
		if ct != "" {
			contentType = ct
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordRemoteRequest(backendLabel, method, path, 0, time.Since(start))
		c.log(ctx).Warn("Remote request failed", slog.String("method", method), slog.String("path", path), slog.Any("error", err))

		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	metrics.RecordRemoteRequest(backendLabel, method, path, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	c.log(ctx).Debug("Remote request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	return normalize(resp.StatusCode, resp.Header.Get("Content-Type"), raw)
}

func normalize(status int, contentType string, body []byte) (*Result, error) {
	if status < 200 || status > 299 {
		return nil, errors.WithStack(domainerrors.NewAPIError(status, strings.TrimSpace(string(body))))
	}

	if status == http.StatusNoContent {
		return &Result{Kind: ResultEmpty, Status: status}, nil
	}

	if isJSON(contentType) {
		if !gjson.ValidBytes(body) {
			return nil, errors.Errorf("invalid JSON response with status %d", status)
		}

		return &Result{Kind: ResultJSON, Status: status, Body: body}, nil
	}

	return &Result{Kind: ResultText, Status: status, Body: body}, nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}

	return c.tokens.Token()
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}
