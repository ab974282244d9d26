package pharmacy

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jrsteele09/ayursetu-client/gateway"
)

const (
	basePath      = "/api/pharmacy"
	medicinesPath = basePath + "/medicines"
)

// API wraps the pharmacy service endpoints.
type API struct {
	client gateway.Requester
}

func NewAPI(client gateway.Requester) *API {
	return &API{client: client}
}

func (a *API) List(ctx context.Context) ([]Medicine, error) {
	return a.list(ctx, medicinesPath, nil)
}

func (a *API) Get(ctx context.Context, id int64) (*Medicine, error) {
	var m Medicine
	if err := a.client.Get(ctx, idPath(id), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (a *API) ByCategory(ctx context.Context, category string) ([]Medicine, error) {
	return a.list(ctx, medicinesPath+"/category/"+url.PathEscape(category), nil)
}

func (a *API) Available(ctx context.Context) ([]Medicine, error) {
	return a.list(ctx, medicinesPath+"/available", nil)
}

func (a *API) Search(ctx context.Context, query string) ([]Medicine, error) {
	return a.list(ctx, medicinesPath+"/search", url.Values{"query": {query}})
}

func (a *API) LowStock(ctx context.Context) ([]Medicine, error) {
	return a.list(ctx, medicinesPath+"/low-stock", nil)
}

func (a *API) Create(ctx context.Context, m Medicine) (*Medicine, error) {
	var out Medicine
	if err := a.client.Post(ctx, medicinesPath, m, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) Update(ctx context.Context, id int64, m Medicine) (*Medicine, error) {
	var out Medicine
	if err := a.client.Put(ctx, idPath(id), m, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) Delete(ctx context.Context, id int64) error {
	return a.client.Delete(ctx, idPath(id), nil)
}

// UpdateStock sets the absolute stock quantity. The backend replies with no body.
func (a *API) UpdateStock(ctx context.Context, id int64, quantity int) error {
	return a.client.Put(ctx, idPath(id)+"/stock", nil, url.Values{"quantity": {strconv.Itoa(quantity)}}, nil)
}

// Health returns the service's plain-text health message.
func (a *API) Health(ctx context.Context) (string, error) {
	var out string
	if err := a.client.Get(ctx, basePath+"/health", nil, &out); err != nil {
		return "", err
	}
	return out, nil
}

func (a *API) list(ctx context.Context, path string, params url.Values) ([]Medicine, error) {
	var out []Medicine
	if err := a.client.Get(ctx, path, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func idPath(id int64) string {
	return medicinesPath + "/" + strconv.FormatInt(id, 10)
}
