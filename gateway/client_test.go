package gateway_test

import (
	"context"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/jrsteele09/ayursetu-client/gateway"
	apperrors "github.com/jrsteele09/ayursetu-client/internal/errors"
	"github.com/jrsteele09/ayursetu-client/internal/testutil"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestRequestDefaultsAndDecode(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodPost, "/api/items", http.StatusCreated, item{ID: 7, Name: "Triphala"})

	c := gateway.New(backend.URL() + "/")
	var got item
	err := c.Post(context.Background(), "/api/items", item{Name: "Triphala"}, url.Values{"dryRun": {"false"}}, &got)
	require.NoError(t, err)
	require.Equal(t, item{ID: 7, Name: "Triphala"}, got)

	last := backend.Last()
	require.Equal(t, http.MethodPost, last.Method)
	require.Equal(t, "/api/items", last.Path)
	require.Equal(t, "false", last.Query.Get("dryRun"))
	require.Equal(t, "application/json", last.Header.Get("Content-Type"))
	require.Empty(t, last.Header.Get(gateway.AuthorizationHeader))
	_, err = uuid.Parse(last.Header.Get(gateway.RequestIDHeader))
	require.NoError(t, err)

	var sent item
	last.DecodeBody(t, &sent)
	require.Equal(t, "Triphala", sent.Name)
}

func TestDefaultAuthorizationHeader(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodGet, "/api/doctors", http.StatusOK, []item{})

	c := gateway.New(backend.URL())
	c.SetDefaultHeader(gateway.AuthorizationHeader, gateway.BearerValue("T"))
	require.Equal(t, "Bearer T", c.DefaultHeader(gateway.AuthorizationHeader))

	require.NoError(t, c.Get(context.Background(), "/api/doctors", nil, nil))
	require.Equal(t, "Bearer T", backend.Last().Header.Get(gateway.AuthorizationHeader))

	c.DeleteDefaultHeader(gateway.AuthorizationHeader)
	require.Empty(t, c.DefaultHeader(gateway.AuthorizationHeader))

	require.NoError(t, c.Get(context.Background(), "/api/doctors", nil, nil))
	require.Empty(t, backend.Last().Header.Get(gateway.AuthorizationHeader))
}

func TestRequestInterceptorSeesLatestValue(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodGet, "/api/doctors", http.StatusOK, nil)

	var current atomic.Value
	current.Store("first")

	c := gateway.New(backend.URL(), gateway.WithRequestInterceptor(func(req *http.Request) error {
		gateway.SetBearer(req, current.Load().(string))
		return nil
	}))

	require.NoError(t, c.Get(context.Background(), "/api/doctors", nil, nil))
	require.Equal(t, "Bearer first", backend.Last().Header.Get(gateway.AuthorizationHeader))

	current.Store("second")
	require.NoError(t, c.Get(context.Background(), "/api/doctors", nil, nil))
	require.Equal(t, "Bearer second", backend.Last().Header.Get(gateway.AuthorizationHeader))
}

func TestUnauthorizedHooksFireAndErrorPropagates(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodGet, "/api/pharmacy/medicines", http.StatusUnauthorized, map[string]any{"status": 401, "message": "Token expired"})

	c := gateway.New(backend.URL())
	var fired int32
	c.OnUnauthorized(func(context.Context) { atomic.AddInt32(&fired, 1) })
	c.OnUnauthorized(func(context.Context) { atomic.AddInt32(&fired, 1) })

	err := c.Get(context.Background(), "/api/pharmacy/medicines", nil, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
	require.Equal(t, http.StatusUnauthorized, gateway.StatusCode(err))
	require.Equal(t, "Token expired", gateway.ErrorMessage(err))
	require.EqualValues(t, 2, atomic.LoadInt32(&fired))
}

func TestNonUnauthorizedFailuresDoNotFireHooks(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodPost, "/api/users/login", http.StatusBadRequest, map[string]any{
		"status":           400,
		"error":            "Validation Error",
		"message":          "Invalid input data",
		"validationErrors": map[string]string{"email": "Invalid email format"},
	})
	backend.Handle(http.MethodGet, "/api/forbidden", http.StatusForbidden, "Access denied")

	c := gateway.New(backend.URL())
	c.OnUnauthorized(func(context.Context) { t.Fatal("hook must not fire") })

	err := c.Post(context.Background(), "/api/users/login", map[string]string{"email": "x"}, nil, nil)
	require.ErrorIs(t, err, apperrors.ErrRequestFailed)

	var gwErr *gateway.Error
	require.ErrorAs(t, err, &gwErr)
	require.Equal(t, http.StatusBadRequest, gwErr.Status)
	require.Equal(t, "Invalid input data", gwErr.Message())
	require.Equal(t, "Invalid email format", gwErr.Payload.ValidationErrors["email"])
	require.Contains(t, err.Error(), "status 400")

	err = c.Get(context.Background(), "/api/forbidden", nil, nil)
	require.ErrorIs(t, err, apperrors.ErrRequestFailed)
	require.Equal(t, "Access denied", gateway.ErrorMessage(err))
}

func TestTransportFailure(t *testing.T) {
	backend := testutil.NewBackend(t)
	baseURL := backend.URL()

	var observed error
	c := gateway.New(baseURL, gateway.WithResponseInterceptor(func(_ *http.Request, resp *http.Response, err error) {
		require.Nil(t, resp)
		observed = err
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Get(ctx, "/api/doctors", nil, nil)
	require.ErrorIs(t, err, apperrors.ErrTransport)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, gateway.StatusCode(err))
	require.Empty(t, gateway.ErrorMessage(err))
	require.Error(t, observed)
}

func TestPlainTextAndMalformedBodies(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodGet, "/api/pharmacy/health", http.StatusOK, "Pharmacy Service is running!")
	backend.Handle(http.MethodGet, "/api/doctors/1", http.StatusOK, "not json")
	backend.Handle(http.MethodDelete, "/api/doctors/1", http.StatusNoContent, nil)

	c := gateway.New(backend.URL())

	var health string
	require.NoError(t, c.Get(context.Background(), "/api/pharmacy/health", nil, &health))
	require.Equal(t, "Pharmacy Service is running!", health)

	var doc item
	err := c.Get(context.Background(), "/api/doctors/1", nil, &doc)
	require.ErrorIs(t, err, apperrors.ErrMalformedResponse)
	require.Equal(t, http.StatusOK, gateway.StatusCode(err))

	untouched := item{ID: 3}
	require.NoError(t, c.Delete(context.Background(), "/api/doctors/1", &untouched))
	require.Equal(t, item{ID: 3}, untouched)
}

func TestRequestInterceptorErrorAborts(t *testing.T) {
	backend := testutil.NewBackend(t)
	c := gateway.New(backend.URL())
	c.AddRequestInterceptor(func(*http.Request) error { return apperrors.ErrInternal })

	err := c.Get(context.Background(), "/api/doctors", nil, nil)
	require.ErrorIs(t, err, apperrors.ErrInternal)
	require.Empty(t, backend.Requests())
}

func TestWithHeaderOption(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodGet, "/api/doctors", http.StatusOK, nil)

	c := gateway.New(backend.URL(), gateway.WithHeader("X-Client", "cli"), gateway.WithDebug(true))
	require.NoError(t, c.Get(context.Background(), "/api/doctors", nil, nil))
	require.Equal(t, "cli", backend.Last().Header.Get("X-Client"))
}

func TestBaseURLTrimsTrailingSlash(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Handle(http.MethodGet, "/api/pharmacy/health", http.StatusOK, "ok")

	c := gateway.New(backend.URL() + "/")
	require.Equal(t, backend.URL(), c.BaseURL())

	var out string
	require.NoError(t, c.Get(context.Background(), "/api/pharmacy/health", nil, &out))
	require.Equal(t, "/api/pharmacy/health", backend.Last().Path)
}
