package users

// RoleType is the account type a user registers with.
type RoleType string

const (
	RolePatient RoleType = "PATIENT"
	RoleDoctor  RoleType = "DOCTOR"
	RoleAdmin   RoleType = "ADMIN"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Profile is a user as returned by the user service.
type Profile struct {
	Name             string   `json:"name,omitempty"`
	Email            string   `json:"email,omitempty"`
	Role             RoleType `json:"role,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	Address          string   `json:"address,omitempty"`
	City             string   `json:"city,omitempty"`
	State            string   `json:"state,omitempty"`
	Country          string   `json:"country,omitempty"`
	Pincode          string   `json:"pincode,omitempty"`
	DateOfBirth      string   `json:"dateOfBirth,omitempty"` // yyyy-mm-dd
	Gender           Gender   `json:"gender,omitempty"`
	BloodGroup       string   `json:"bloodGroup,omitempty"`
	EmergencyContact string   `json:"emergencyContact,omitempty"`
	IsActive         *bool    `json:"isActive,omitempty"`
	IsVerified       *bool    `json:"isVerified,omitempty"`
}

// Registration is the sign-up payload. Password confirmation is a form
// concern and is never sent.
type Registration struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Password         string   `json:"password"`
	Role             RoleType `json:"role"`
	Phone            string   `json:"phone,omitempty"`
	Address          string   `json:"address,omitempty"`
	City             string   `json:"city,omitempty"`
	State            string   `json:"state,omitempty"`
	Country          string   `json:"country,omitempty"`
	Pincode          string   `json:"pincode,omitempty"`
	DateOfBirth      string   `json:"dateOfBirth,omitempty"`
	Gender           Gender   `json:"gender,omitempty"`
	BloodGroup       string   `json:"bloodGroup,omitempty"`
	EmergencyContact string   `json:"emergencyContact,omitempty"`
}

// ProfileUpdate carries only the fields being changed.
type ProfileUpdate struct {
	Name             string   `json:"name,omitempty"`
	Email            string   `json:"email,omitempty"`
	Password         string   `json:"password,omitempty"`
	Role             RoleType `json:"role,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	Address          string   `json:"address,omitempty"`
	City             string   `json:"city,omitempty"`
	State            string   `json:"state,omitempty"`
	Country          string   `json:"country,omitempty"`
	Pincode          string   `json:"pincode,omitempty"`
	DateOfBirth      string   `json:"dateOfBirth,omitempty"`
	Gender           Gender   `json:"gender,omitempty"`
	BloodGroup       string   `json:"bloodGroup,omitempty"`
	EmergencyContact string   `json:"emergencyContact,omitempty"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}
