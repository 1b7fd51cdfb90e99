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

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointme-client/internal/metrics"
)

const maxErrorBody = 64 << 10

// Client talks to the REST backend. The zero token is anonymous; use
// WithToken to derive a client that authenticates every request.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
	log     *zap.Logger
}

func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}, log)
}

func NewWithHTTPClient(baseURL string, hc *http.Client, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		log:     log,
	}
}

// WithToken returns a copy of c that sends "Authorization: Bearer token".
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

func (c *Client) Authenticated() bool {
	return c.token != ""
}

// FileURL is the public URL of an uploaded business image.
func (c *Client) FileURL(filename string) string {
	if filename == "" {
		return ""
	}
	if strings.HasPrefix(filename, "http://") || strings.HasPrefix(filename, "https://") {
		return filename
	}
	if strings.HasPrefix(filename, "/") {
		return c.baseURL + filename
	}
	return c.baseURL + "/upload/files/" + url.PathEscape(filename)
}

type request struct {
	method string
	// route is the path template used as metric label.
	route string
	path  string
	query url.Values
	body  any

	raw         io.Reader
	contentType string
}

func (c *Client) send(ctx context.Context, r request, out any) (err error) {
	op := r.method + " " + r.route
	start := time.Now()
	defer func() {
		metrics.BackendRequestsTotal.WithLabelValues(r.method, r.route, string(Classify(err))).Inc()
		metrics.BackendRequestDuration.WithLabelValues(r.method, r.route).Observe(time.Since(start).Seconds())
	}()

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	body := r.raw
	contentType := r.contentType
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("apiclient: %s: encode body: %w", op, err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return fmt.Errorf("apiclient: %s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("backend unreachable", zap.String("op", op), zap.Error(err))
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && c.token != "" {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%s: %w", op, ErrAuthExpired)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		se := &ServerError{Op: op, Status: resp.StatusCode, Detail: parseDetail(raw)}
		if resp.StatusCode >= 500 {
			c.log.Warn("backend error", zap.String("op", op), zap.Int("status", resp.StatusCode))
		}
		return se
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		if ctx.Err() != nil {
			return &NetworkError{Op: op, Err: err}
		}
		return &ServerError{Op: op, Status: resp.StatusCode, Detail: "invalid response from server"}
	}

	return nil
}

func (c *Client) get(ctx context.Context, route, path string, query url.Values, out any) error {
	return c.send(ctx, request{method: http.MethodGet, route: route, path: path, query: query}, out)
}

func (c *Client) post(ctx context.Context, route, path string, body, out any) error {
	return c.send(ctx, request{method: http.MethodPost, route: route, path: path, body: body}, out)
}

func (c *Client) put(ctx context.Context, route, path string, body, out any) error {
	return c.send(ctx, request{method: http.MethodPut, route: route, path: path, body: body}, out)
}

func (c *Client) patch(ctx context.Context, route, path string, body, out any) error {
	return c.send(ctx, request{method: http.MethodPatch, route: route, path: path, body: body}, out)
}

func (c *Client) delete(ctx context.Context, route, path string) error {
	return c.send(ctx, request{method: http.MethodDelete, route: route, path: path}, nil)
}

func idPath(format string, id uint) string {
	return fmt.Sprintf(format, id)
}
