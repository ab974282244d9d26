package doctors

import "github.com/jrsteele09/ayursetu-client/internal/utils"

type Specialization struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// Doctor mirrors the doctor service DTO. Pointer fields distinguish "unset"
// from false or zero when creating and updating.
type Doctor struct {
	ID              int64            `json:"id,omitempty"`
	Name            string           `json:"name,omitempty"`
	Email           string           `json:"email,omitempty"`
	Phone           string           `json:"phone,omitempty"`
	Specialization  string           `json:"specialization,omitempty"`
	Qualification   string           `json:"qualification,omitempty"`
	LicenseNumber   string           `json:"licenseNumber,omitempty"`
	Experience      string           `json:"experience,omitempty"`
	Bio             string           `json:"bio,omitempty"`
	Address         string           `json:"address,omitempty"`
	City            string           `json:"city,omitempty"`
	State           string           `json:"state,omitempty"`
	Country         string           `json:"country,omitempty"`
	Pincode         string           `json:"pincode,omitempty"`
	ConsultationFee *float64         `json:"consultationFee,omitempty"`
	IsAvailable     *bool            `json:"isAvailable,omitempty"`
	IsVerified      *bool            `json:"isVerified,omitempty"`
	Specializations []Specialization `json:"specializations,omitempty"`
	Languages       []string         `json:"languages,omitempty"`
}

// Available defaults to true, as the backend does.
func (d Doctor) Available() bool {
	return utils.ValueOr(d.IsAvailable, true)
}

func (d Doctor) Verified() bool {
	return utils.Value(d.IsVerified)
}

func (d Doctor) Fee() float64 {
	return utils.Value(d.ConsultationFee)
}
