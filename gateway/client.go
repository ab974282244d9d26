package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const RequestIDHeader = "X-Request-ID"

// Requester is the request surface the feature wrappers are built on.
type Requester interface {
	Get(ctx context.Context, path string, params url.Values, out any) error
	Post(ctx context.Context, path string, body any, params url.Values, out any) error
	Put(ctx context.Context, path string, body any, params url.Values, out any) error
	Patch(ctx context.Context, path string, body any, params url.Values, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// Client sends every backend call through one request/response pipeline:
// default headers, request interceptors, transport, response interceptors and
// the unauthorized hooks.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu                   sync.RWMutex
	headers              http.Header
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
	unauthorizedHooks    []UnauthorizedHook

	metrics *Metrics
}

var _ Requester = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

func WithRequestInterceptor(i RequestInterceptor) Option {
	return func(c *Client) {
		c.requestInterceptors = append(c.requestInterceptors, i)
	}
}

func WithResponseInterceptor(i ResponseInterceptor) Option {
	return func(c *Client) {
		c.responseInterceptors = append(c.responseInterceptors, i)
	}
}

// WithDebug logs every exchange at debug level.
func WithDebug(enabled bool) Option {
	return func(c *Client) {
		if enabled {
			c.responseInterceptors = append(c.responseInterceptors, debugLogging())
		}
	}
}

// New creates a client for baseURL. Content-Type and Accept default to JSON.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		headers:    make(http.Header),
	}
	c.headers.Set("Content-Type", "application/json")
	c.headers.Set("Accept", "application/json")

	for _, opt := range opts {
		opt(c)
	}
	if c.metrics != nil {
		hc := *c.httpClient
		hc.Transport = c.metrics.RoundTripper(hc.Transport)
		c.httpClient = &hc
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) SetDefaultHeader(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers.Set(key, value)
}

func (c *Client) DeleteDefaultHeader(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers.Del(key)
}

// DefaultHeader returns the current default value for key, or "".
func (c *Client) DefaultHeader(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.headers.Get(key)
}

func (c *Client) Get(ctx context.Context, path string, params url.Values, out any) error {
	return c.Request(ctx, http.MethodGet, path, nil, params, out)
}

func (c *Client) Post(ctx context.Context, path string, body any, params url.Values, out any) error {
	return c.Request(ctx, http.MethodPost, path, body, params, out)
}

func (c *Client) Put(ctx context.Context, path string, body any, params url.Values, out any) error {
	return c.Request(ctx, http.MethodPut, path, body, params, out)
}

func (c *Client) Patch(ctx context.Context, path string, body any, params url.Values, out any) error {
	return c.Request(ctx, http.MethodPatch, path, body, params, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Request(ctx, http.MethodDelete, path, nil, nil, out)
}

// Request dispatches method to base address + path. body, when not nil, is
// sent as JSON; out, when not nil, receives the decoded response body.
// Every failure is returned as *Error.
func (c *Client) Request(ctx context.Context, method, path string, body any, params url.Values, out any) error {
	req, err := c.newRequest(ctx, method, path, body, params)
	if err != nil {
		return newTransportError(method, path, err)
	}

	requestInterceptors, responseInterceptors, unauthorizedHooks := c.snapshotInterceptors()
	for _, intercept := range requestInterceptors {
		if err := intercept(req); err != nil {
			return newTransportError(method, path, fmt.Errorf("request interceptor: %w", err))
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		for _, intercept := range responseInterceptors {
			intercept(req, nil, err)
		}
		log.Debug().Err(err).Str("method", method).Str("path", path).Msg("Request failed without response")
		return newTransportError(method, path, err)
	}
	defer resp.Body.Close()

	data, readErr := io.ReadAll(resp.Body)
	for _, intercept := range responseInterceptors {
		intercept(req, resp, readErr)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		log.Info().Str("method", method).Str("path", path).Msg("Unauthorized response, clearing session")
		for _, hook := range unauthorizedHooks {
			hook(ctx)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(method, path, resp.StatusCode, data)
	}

	if readErr != nil {
		gwErr := newStatusError(method, path, resp.StatusCode, nil)
		gwErr.Err = fmt.Errorf("read response: %w", readErr)
		return gwErr
	}

	if err := decodeBody(data, out); err != nil {
		gwErr := newStatusError(method, path, resp.StatusCode, nil)
		gwErr.Body = data
		gwErr.Err = err
		return gwErr
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any, params url.Values) (*http.Request, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	c.mu.RLock()
	for k, v := range c.headers {
		req.Header[k] = append([]string(nil), v...)
	}
	c.mu.RUnlock()

	req.Header.Set(RequestIDHeader, uuid.NewString())
	return req, nil
}

// decodeBody unmarshals data into out. A *string target also accepts plain text.
func decodeBody(data []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if s, ok := out.(*string); ok {
		if json.Unmarshal(data, s) != nil {
			*s = string(data)
		}
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
