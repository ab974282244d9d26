package users

import (
	"context"
	"net/url"

	"github.com/jrsteele09/ayursetu-client/gateway"
)

const basePath = "/api/users"

// API wraps the user service endpoints.
type API struct {
	client gateway.Requester
}

func NewAPI(client gateway.Requester) *API {
	return &API{client: client}
}

func (a *API) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var resp LoginResponse
	if err := a.client.Post(ctx, basePath+"/login", creds, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *API) Register(ctx context.Context, reg Registration) (*Profile, error) {
	var p Profile
	if err := a.client.Post(ctx, basePath+"/register", reg, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (a *API) GetProfile(ctx context.Context, email string) (*Profile, error) {
	var p Profile
	if err := a.client.Get(ctx, userPath(email), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (a *API) UpdateProfile(ctx context.Context, email string, update ProfileUpdate) (*Profile, error) {
	var p Profile
	if err := a.client.Put(ctx, userPath(email), update, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (a *API) Delete(ctx context.Context, email string) (string, error) {
	var msg string
	err := a.client.Delete(ctx, userPath(email), &msg)
	return msg, err
}

func (a *API) List(ctx context.Context) ([]Profile, error) {
	var ps []Profile
	if err := a.client.Get(ctx, basePath+"/all", nil, &ps); err != nil {
		return nil, err
	}
	return ps, nil
}

// ForgotPassword asks the backend to mail a reset link and returns its confirmation text.
func (a *API) ForgotPassword(ctx context.Context, email string) (string, error) {
	var msg string
	err := a.client.Post(ctx, basePath+"/forgot-password", nil, url.Values{"email": {email}}, &msg)
	return msg, err
}

func (a *API) ResetPassword(ctx context.Context, email, newPassword string) (string, error) {
	var msg string
	params := url.Values{"email": {email}, "newPassword": {newPassword}}
	err := a.client.Post(ctx, basePath+"/reset-password", nil, params, &msg)
	return msg, err
}

func (a *API) ResetPasswordWithToken(ctx context.Context, resetToken, newPassword string) (string, error) {
	var msg string
	params := url.Values{"token": {resetToken}, "newPassword": {newPassword}}
	err := a.client.Post(ctx, basePath+"/reset-password-with-token", nil, params, &msg)
	return msg, err
}

func userPath(email string) string {
	return basePath + "/" + url.PathEscape(email)
}
