package consultations

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/jrsteele09/ayursetu-client/gateway"
)

const basePath = "/api/consultations"

// API wraps the consultation service endpoints.
type API struct {
	client gateway.Requester
}

func NewAPI(client gateway.Requester) *API {
	return &API{client: client}
}

func (a *API) List(ctx context.Context) ([]Consultation, error) {
	return a.list(ctx, basePath, nil)
}

func (a *API) Get(ctx context.Context, id int64) (*Consultation, error) {
	var c Consultation
	if err := a.client.Get(ctx, idPath(id), nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *API) ByUser(ctx context.Context, userID int64) ([]Consultation, error) {
	return a.list(ctx, userPath(userID), nil)
}

func (a *API) ByDoctor(ctx context.Context, doctorID int64) ([]Consultation, error) {
	return a.list(ctx, doctorPath(doctorID), nil)
}

func (a *API) ByStatus(ctx context.Context, status Status) ([]Consultation, error) {
	return a.list(ctx, basePath+"/status/"+url.PathEscape(string(status)), nil)
}

func (a *API) ByUserAndStatus(ctx context.Context, userID int64, status Status) ([]Consultation, error) {
	return a.list(ctx, userPath(userID)+"/status/"+url.PathEscape(string(status)), nil)
}

func (a *API) ByDoctorAndStatus(ctx context.Context, doctorID int64, status Status) ([]Consultation, error) {
	return a.list(ctx, doctorPath(doctorID)+"/status/"+url.PathEscape(string(status)), nil)
}

func (a *API) ByDateRange(ctx context.Context, start, end time.Time) ([]Consultation, error) {
	return a.list(ctx, basePath+"/date-range", dateRange(start, end))
}

func (a *API) ByUserAndDateRange(ctx context.Context, userID int64, start, end time.Time) ([]Consultation, error) {
	return a.list(ctx, userPath(userID)+"/date-range", dateRange(start, end))
}

func (a *API) ByDoctorAndDateRange(ctx context.Context, doctorID int64, start, end time.Time) ([]Consultation, error) {
	return a.list(ctx, doctorPath(doctorID)+"/date-range", dateRange(start, end))
}

// Overdue lists scheduled consultations whose start time has passed.
func (a *API) Overdue(ctx context.Context) ([]Consultation, error) {
	return a.list(ctx, basePath+"/overdue", nil)
}

func (a *API) Create(ctx context.Context, c Consultation) (*Consultation, error) {
	var out Consultation
	if err := a.client.Post(ctx, basePath, c, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) Update(ctx context.Context, id int64, c Consultation) (*Consultation, error) {
	var out Consultation
	if err := a.client.Put(ctx, idPath(id), c, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) Delete(ctx context.Context, id int64) error {
	return a.client.Delete(ctx, idPath(id), nil)
}

func (a *API) UpdateStatus(ctx context.Context, id int64, status Status) (*Consultation, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown consultation status %q", status)
	}
	var out Consultation
	if err := a.client.Patch(ctx, idPath(id)+"/status", nil, url.Values{"status": {string(status)}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) UpdateDiagnosis(ctx context.Context, id int64, d Diagnosis) (*Consultation, error) {
	params := url.Values{
		"diagnosis":    {d.Diagnosis},
		"prescription": {d.Prescription},
		"notes":        {d.Notes},
	}
	var out Consultation
	if err := a.client.Patch(ctx, idPath(id)+"/diagnosis", nil, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateMeetingLink asks the backend to attach a video room link and
// returns the updated consultation.
func (a *API) GenerateMeetingLink(ctx context.Context, id int64) (*Consultation, error) {
	var out Consultation
	if err := a.client.Post(ctx, idPath(id)+"/meeting-link", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) list(ctx context.Context, path string, params url.Values) ([]Consultation, error) {
	var out []Consultation
	if err := a.client.Get(ctx, path, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func idPath(id int64) string {
	return basePath + "/" + strconv.FormatInt(id, 10)
}

func userPath(userID int64) string {
	return basePath + "/user/" + strconv.FormatInt(userID, 10)
}

func doctorPath(doctorID int64) string {
	return basePath + "/doctor/" + strconv.FormatInt(doctorID, 10)
}

func dateRange(start, end time.Time) url.Values {
	return url.Values{
		"startDate": {start.Format(DateTimeLayout)},
		"endDate":   {end.Format(DateTimeLayout)},
	}
}
