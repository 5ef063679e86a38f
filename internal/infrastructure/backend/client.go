// Package backend talks to the freight REST backend and turns its loosely
// shaped JSON into the canonical entity records.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"freight_portal/internal/logging"
)

var (
	// ErrUnreachable covers transport failures, where no HTTP status is known.
	ErrUnreachable = errors.New("unable to reach server")
	// ErrInvalidResponse is returned when a 2xx body lacks the expected shape.
	ErrInvalidResponse = fmt.Errorf("%w: unexpected response body", ErrUnreachable)
)

// APIError is a non-2xx backend answer.
type APIError struct {
	Status  int
	Payload any
	Message string
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) StatusCode() int { return e.Status }

// Options configure a single backend call.
type Options struct {
	Method  string
	Token   string
	Body    any
	Headers map[string]string
}

type Client struct {
	baseURL string
	session *http.Client
}

func NewClient(baseURL string, session *http.Client) *Client {
	if session == nil {
		session = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: session,
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) url(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func (c *Client) newRequest(ctx context.Context, path string, opts Options) (*http.Request, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.Body != nil {
		b, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.Token)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

// Request performs one call and decodes the body defensively: an empty or
// unparseable body yields nil. Non-2xx answers become *APIError.
func (c *Client) Request(ctx context.Context, path string, opts Options) (data any, err error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	defer logging.Time(ctx, "backend "+method+" "+path)(&err)

	req, err := c.newRequest(ctx, path, opts)
	if err != nil {
		return nil, err
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnreachable, err)
	}
	payload := parseBody(raw, path)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Payload: payload,
			Message: errorMessage(payload, resp.StatusCode),
		}
	}
	return payload, nil
}

// RequestWithFallback tries each path variant in order. Only 404, 405 and 501
// move on to the next variant; any other failure is returned immediately.
func (c *Client) RequestWithFallback(ctx context.Context, paths []string, opts Options) (any, error) {
	if len(paths) == 0 {
		return nil, errors.New("no request path")
	}
	var lastErr error
	for _, p := range paths {
		data, err := c.Request(ctx, p, opts)
		if err == nil {
			return data, nil
		}
		lastErr = err
		if !isFallbackStatus(err) {
			return nil, err
		}
		log.Printf("[backend][client] fallback path=%s err=%v", p, err)
	}
	return nil, lastErr
}

// adminFirst lists the /api/admin variant of every path ahead of the legacy
// paths, keeping their relative order.
func adminFirst(paths ...string) []string {
	out := make([]string, 0, len(paths)*2)
	for _, p := range paths {
		out = append(out, "/api/admin"+strings.TrimPrefix(p, "/api"))
	}
	return append(out, paths...)
}

func isFallbackStatus(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Status {
	case http.StatusNotFound, http.StatusMethodNotAllowed, http.StatusNotImplemented:
		return true
	}
	return false
}

func parseBody(raw []byte, path string) any {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("[backend][client] unparseable body path=%s err=%v", path, err)
		return nil
	}
	return out
}

func errorMessage(payload any, status int) string {
	if m, ok := payload.(map[string]any); ok {
		for _, key := range []string{"message", "error"} {
			if s, ok := m[key].(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return fmt.Sprintf("Request failed with status %d", status)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
