package notifications

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jrsteele09/ayursetu-client/gateway"
)

const basePath = "/api/notifications"

// API wraps the notification service endpoints. The send operations return
// the backend's plain-text confirmation.
type API struct {
	client gateway.Requester
}

func NewAPI(client gateway.Requester) *API {
	return &API{client: client}
}

func (a *API) SendEmail(ctx context.Context, req EmailRequest) (string, error) {
	return a.send(ctx, "/email", req)
}

func (a *API) SendSMS(ctx context.Context, req SMSRequest) (string, error) {
	return a.send(ctx, "/sms", req)
}

func (a *API) SendPush(ctx context.Context, req PushNotification) (string, error) {
	return a.send(ctx, "/push", req)
}

func (a *API) List(ctx context.Context) ([]Notification, error) {
	return a.list(ctx, basePath)
}

func (a *API) Get(ctx context.Context, id int64) (*Notification, error) {
	var n Notification
	if err := a.client.Get(ctx, idPath(id), nil, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (a *API) Create(ctx context.Context, n Notification) (*Notification, error) {
	var out Notification
	if err := a.client.Post(ctx, basePath, n, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) Update(ctx context.Context, id int64, n Notification) (*Notification, error) {
	var out Notification
	if err := a.client.Put(ctx, idPath(id), n, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) Delete(ctx context.Context, id int64) error {
	return a.client.Delete(ctx, idPath(id), nil)
}

func (a *API) ByUser(ctx context.Context, userID int64) ([]Notification, error) {
	return a.list(ctx, basePath+"/user/"+strconv.FormatInt(userID, 10))
}

func (a *API) ByStatus(ctx context.Context, status Status) ([]Notification, error) {
	return a.list(ctx, basePath+"/status/"+url.PathEscape(string(status)))
}

func (a *API) ByType(ctx context.Context, t Type) ([]Notification, error) {
	return a.list(ctx, basePath+"/type/"+url.PathEscape(string(t)))
}

func (a *API) ByChannel(ctx context.Context, c Channel) ([]Notification, error) {
	return a.list(ctx, basePath+"/channel/"+url.PathEscape(string(c)))
}

func (a *API) send(ctx context.Context, path string, body any) (string, error) {
	var out string
	if err := a.client.Post(ctx, basePath+path, body, nil, &out); err != nil {
		return "", err
	}
	return out, nil
}

func (a *API) list(ctx context.Context, path string) ([]Notification, error) {
	var out []Notification
	if err := a.client.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func idPath(id int64) string {
	return basePath + "/" + strconv.FormatInt(id, 10)
}
