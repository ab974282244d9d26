package gateway

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

// RequestInterceptor runs on every outbound request after the default headers
// are applied. Returning an error aborts the request.
type RequestInterceptor func(req *http.Request) error

// ResponseInterceptor observes every outcome. resp is nil when the transport
// failed, in which case err is set.
type ResponseInterceptor func(req *http.Request, resp *http.Response, err error)

// UnauthorizedHook is called for every 401 response, before the error is
// returned to the caller.
type UnauthorizedHook func(ctx context.Context)

const AuthorizationHeader = "Authorization"

// BearerValue formats rawToken as an Authorization header value.
func BearerValue(rawToken string) string {
	tok := &oauth2.Token{AccessToken: rawToken}
	return tok.Type() + " " + tok.AccessToken
}

// SetBearer sets the Authorization header of req to the bearer form of rawToken.
func SetBearer(req *http.Request, rawToken string) {
	(&oauth2.Token{AccessToken: rawToken, TokenType: "Bearer"}).SetAuthHeader(req)
}

func (c *Client) AddRequestInterceptor(i RequestInterceptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requestInterceptors = append(c.requestInterceptors, i)
}

func (c *Client) AddResponseInterceptor(i ResponseInterceptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responseInterceptors = append(c.responseInterceptors, i)
}

// OnUnauthorized registers hook to run whenever any request receives a 401.
func (c *Client) OnUnauthorized(hook UnauthorizedHook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unauthorizedHooks = append(c.unauthorizedHooks, hook)
}

func (c *Client) snapshotInterceptors() ([]RequestInterceptor, []ResponseInterceptor, []UnauthorizedHook) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]RequestInterceptor(nil), c.requestInterceptors...),
		append([]ResponseInterceptor(nil), c.responseInterceptors...),
		append([]UnauthorizedHook(nil), c.unauthorizedHooks...)
}
