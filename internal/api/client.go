// Package api is the authenticated HTTP client for the Greenly backend.
// It injects the bearer token from the session store, enforces a
// per-request timeout, and normalizes failures into typed errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/Harshchoudhary07/Greenly/internal/config"
	"github.com/Harshchoudhary07/Greenly/internal/session"
)

// Responses larger than this are treated as malformed.
const maxResponseBytes = 8 << 20

type Client struct {
	baseURL         string
	timeout         time.Duration
	http            *http.Client
	session         *session.Manager
	onLoginRequired func()
	log             *zap.Logger
}

type Option func(*Client)

// WithLoginRequired registers the redirect hook fired after an
// Unauthorized response has cleared the session.
func WithLoginRequired(fn func()) Option {
	return func(c *Client) { c.onLoginRequired = fn }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func NewClient(cfg config.Config, sess *session.Manager, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		timeout: cfg.RequestTimeout,
		http:    &http.Client{},
		session: sess,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET with params encoded as a query string.
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, endpoint, params, nil, "")
}

// Post performs a POST with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	body, contentType, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, endpoint, nil, body, contentType)
}

// Put performs a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	body, contentType, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPut, endpoint, nil, body, contentType)
}

// Patch performs a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	body, contentType, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPatch, endpoint, nil, body, contentType)
}

// Delete performs a DELETE.
func (c *Client) Delete(ctx context.Context, endpoint string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil, "")
}

// Upload posts a multipart body with the file under field "file" plus
// any extra fields. The transport sets its own boundary content type.
func (c *Client) Upload(ctx context.Context, endpoint, filename string, file io.Reader, fields map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create multipart file field: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy file into multipart body: %w", err)
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("write multipart field %q: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, endpoint, nil, &buf, writer.FormDataContentType())
}

func jsonBody(payload any) (io.Reader, string, error) {
	if payload == nil {
		return nil, "", nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("marshal request body: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, params map[string]string, body io.Reader, contentType string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL + endpoint
	if len(params) > 0 {
		query := url.Values{}
		for key, value := range params {
			query.Set(key, value)
		}
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, endpoint, err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	return c.handleResponse(method, endpoint, resp)
}

func (c *Client) handleResponse(method, endpoint string, resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	c.log.Debug("request failed",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode))

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		// Token expired or invalid: drop the session, then hand the
		// redirect decision to the UI.
		if err := c.session.Clear(); err != nil {
			c.log.Warn("clear session failed", zap.Error(err))
		}
		if c.onLoginRequired != nil {
			c.onLoginRequired()
		}
		return nil, ErrUnauthorized
	case http.StatusForbidden:
		return nil, ErrForbidden
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusInternalServerError:
		return nil, ErrServer
	}

	return nil, requestFailed(resp.StatusCode, errorMessage(resp, body))
}

// errorMessage pulls the first of detail, message or error out of a
// JSON failure body, falling back to a generic message.
func errorMessage(resp *http.Response, body []byte) string {
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		for _, field := range []string{"detail", "message", "error"} {
			if value := gjson.GetBytes(body, field); value.Exists() && value.String() != "" {
				return value.String()
			}
		}
	}
	return "An error occurred"
}

func decode(data []byte, target any) error {
	if target == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
