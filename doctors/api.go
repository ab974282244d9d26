package doctors

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jrsteele09/ayursetu-client/gateway"
)

const basePath = "/api/doctors"

// API wraps the doctor service endpoints.
type API struct {
	client gateway.Requester
}

func NewAPI(client gateway.Requester) *API {
	return &API{client: client}
}

func (a *API) List(ctx context.Context) ([]Doctor, error) {
	return a.list(ctx, basePath, nil)
}

func (a *API) Get(ctx context.Context, id int64) (*Doctor, error) {
	var d Doctor
	if err := a.client.Get(ctx, idPath(id), nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (a *API) GetByEmail(ctx context.Context, email string) (*Doctor, error) {
	var d Doctor
	if err := a.client.Get(ctx, basePath+"/email/"+url.PathEscape(email), nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (a *API) BySpecialization(ctx context.Context, specialization string) ([]Doctor, error) {
	return a.list(ctx, basePath+"/specialization/"+url.PathEscape(specialization), nil)
}

func (a *API) ByCity(ctx context.Context, city string) ([]Doctor, error) {
	return a.list(ctx, basePath+"/city/"+url.PathEscape(city), nil)
}

func (a *API) Available(ctx context.Context) ([]Doctor, error) {
	return a.list(ctx, basePath+"/available", nil)
}

func (a *API) Verified(ctx context.Context) ([]Doctor, error) {
	return a.list(ctx, basePath+"/verified", nil)
}

func (a *API) Search(ctx context.Context, specialization, city string) ([]Doctor, error) {
	return a.list(ctx, basePath+"/search", url.Values{
		"specialization": {specialization},
		"city":           {city},
	})
}

func (a *API) ByFeeRange(ctx context.Context, minFee, maxFee float64) ([]Doctor, error) {
	return a.list(ctx, basePath+"/fee-range", url.Values{
		"minFee": {formatFloat(minFee)},
		"maxFee": {formatFloat(maxFee)},
	})
}

func (a *API) Specializations(ctx context.Context) ([]string, error) {
	var out []string
	if err := a.client.Get(ctx, basePath+"/specializations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) Cities(ctx context.Context) ([]string, error) {
	var out []string
	if err := a.client.Get(ctx, basePath+"/cities", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) Create(ctx context.Context, d Doctor) (*Doctor, error) {
	var out Doctor
	if err := a.client.Post(ctx, basePath, d, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) Update(ctx context.Context, id int64, d Doctor) (*Doctor, error) {
	var out Doctor
	if err := a.client.Put(ctx, idPath(id), d, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) Delete(ctx context.Context, id int64) error {
	return a.client.Delete(ctx, idPath(id), nil)
}

func (a *API) SetAvailability(ctx context.Context, id int64, available bool) error {
	return a.client.Patch(ctx, idPath(id)+"/availability", nil, url.Values{"isAvailable": {strconv.FormatBool(available)}}, nil)
}

func (a *API) SetVerification(ctx context.Context, id int64, verified bool) error {
	return a.client.Patch(ctx, idPath(id)+"/verification", nil, url.Values{"isVerified": {strconv.FormatBool(verified)}}, nil)
}

func (a *API) list(ctx context.Context, path string, params url.Values) ([]Doctor, error) {
	var out []Doctor
	if err := a.client.Get(ctx, path, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func idPath(id int64) string {
	return basePath + "/" + strconv.FormatInt(id, 10)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
