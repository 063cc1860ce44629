// Package supabase reads and writes the database-as-a-service tables through their PostgREST endpoint.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/metrics"
)

const backendLabel = "postgrest"

// OrderDirection is the sort direction of an order clause.
type OrderDirection string

const (
	OrderAsc  OrderDirection = "asc"
	OrderDesc OrderDirection = "desc"
)

// Config holds client configuration.
type Config struct {
	// URL is the project URL; requests go to URL + "/rest/v1".
	URL     string
	AnonKey string
	Timeout time.Duration
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

// Client talks to PostgREST with the anon key, acting as the signed-in user when a token is available.
type Client struct {
	restURL    string
	anonKey    string
	httpClient *http.Client
	tokens     service.TokenSource
	logger     *slog.Logger
}

// NewClient creates a new PostgREST client.
func NewClient(cfg Config, tokens service.TokenSource, logger *slog.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("data source URL is required")
	}
	if cfg.AnonKey == "" {
		return nil, errors.New("data source anon key is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		restURL:    strings.TrimSuffix(cfg.URL, "/") + "/rest/v1",
		anonKey:    cfg.AnonKey,
		httpClient: httpClient,
		tokens:     tokens,
		logger:     logger,
	}, nil
}

// From starts a query builder for a table.
func (c *Client) From(table string) *QueryBuilder {
	return &QueryBuilder{
		client:  c,
		table:   table,
		method:  http.MethodGet,
		columns: "*",
		headers: make(map[string]string),
	}
}

// Error is a PostgREST error body.
type Error struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
	StatusCode int    `json:"-"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("postgrest %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}

	return fmt.Sprintf("postgrest %d: %s", e.StatusCode, e.Message)
}

func parseError(body []byte, statusCode int) error {
	pgErr := &Error{StatusCode: statusCode}
	if err := json.Unmarshal(body, pgErr); err != nil || pgErr.Message == "" {
		pgErr.Message = strings.TrimSpace(string(body))
	}

	return domainerrors.NewDatabaseExecuteError(pgErr, pgErr.Details)
}

func (c *Client) do(ctx context.Context, method, target string, body []byte, headers map[string]string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.bearer())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	path := strings.TrimPrefix(req.URL.Path, "/rest/v1")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordRemoteRequest(backendLabel, method, path, 0, time.Since(start))

		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	metrics.RecordRemoteRequest(backendLabel, method, path, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Debug("PostgREST request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, errors.WithStack(parseError(raw, resp.StatusCode))
	}

	return raw, nil
}

// bearer is the user's token when signed in, otherwise the anon key.
func (c *Client) bearer() string {
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			return token
		}
	}

	return c.anonKey
}

// QueryBuilder builds and executes a single table request.
type QueryBuilder struct {
	client   *Client
	table    string
	method   string
	columns  string
	filters  []string
	orders   []string
	limitVal int
	body     []byte
	headers  map[string]string
	err      error
}

// Select specifies columns to select.
func (q *QueryBuilder) Select(columns string) *QueryBuilder {
	q.method = http.MethodGet
	q.columns = columns

	return q
}

// Insert inserts records.
func (q *QueryBuilder) Insert(data any) *QueryBuilder {
	q.method = http.MethodPost
	q.setBody(data)
	q.headers["Prefer"] = "return=minimal"

	return q
}

// Update updates the matching records.
func (q *QueryBuilder) Update(data any) *QueryBuilder {
	q.method = http.MethodPatch
	q.setBody(data)
	q.headers["Prefer"] = "return=minimal"

	return q
}

// Delete deletes the matching records.
func (q *QueryBuilder) Delete() *QueryBuilder {
	q.method = http.MethodDelete
	q.headers["Prefer"] = "return=minimal"

	return q
}

// Returning asks PostgREST to answer a write with the affected rows, limited to columns.
func (q *QueryBuilder) Returning(columns string) *QueryBuilder {
	q.columns = columns
	q.headers["Prefer"] = "return=representation"

	return q
}

// Eq adds an equality filter.
func (q *QueryBuilder) Eq(column string, value any) *QueryBuilder {
	q.filters = append(q.filters, column+"=eq."+url.QueryEscape(fmt.Sprint(value)))

	return q
}

// Order adds an order clause.
func (q *QueryBuilder) Order(column string, dir OrderDirection) *QueryBuilder {
	q.orders = append(q.orders, column+"."+string(dir))

	return q
}

// Limit sets the maximum number of rows.
func (q *QueryBuilder) Limit(n int) *QueryBuilder {
	q.limitVal = n

	return q
}

// Execute runs the query and returns the raw response body.
func (q *QueryBuilder) Execute(ctx context.Context) ([]byte, error) {
	if q.err != nil {
		return nil, q.err
	}

	return q.client.do(ctx, q.method, q.buildURL(), q.body, q.headers)
}

// ExecuteInto runs the query and decodes the rows into dest.
func (q *QueryBuilder) ExecuteInto(ctx context.Context, dest any) error {
	data, err := q.Execute(ctx)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return errors.Wrapf(err, "decode %s rows", q.table)
	}

	return nil
}

func (q *QueryBuilder) setBody(data any) {
	body, err := json.Marshal(data)
	if err != nil {
		q.err = errors.Wrapf(err, "encode %s body", q.table)

		return
	}
	q.body = body
}

func (q *QueryBuilder) buildURL() string {
	target := q.client.restURL + "/" + url.PathEscape(q.table)

	params := make([]string, 0, len(q.filters)+3)
	if q.columns != "" {
		params = append(params, "select="+url.QueryEscape(q.columns))
	}
	params = append(params, q.filters...)
	if len(q.orders) > 0 {
		params = append(params, "order="+strings.Join(q.orders, ","))
	}
	if q.limitVal > 0 {
		params = append(params, fmt.Sprintf("limit=%d", q.limitVal))
	}

	if len(params) > 0 {
		target += "?" + strings.Join(params, "&")
	}

	return target
}
