package consultations

type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
	StatusNoShow     Status = "NO_SHOW"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

type Type string

const (
	TypeVideoCall Type = "VIDEO_CALL"
	TypeAudioCall Type = "AUDIO_CALL"
	TypeChat      Type = "CHAT"
	TypeInPerson  Type = "IN_PERSON"
)

// DateTimeLayout is the ISO local date-time the backend accepts for
// date-range queries.
const DateTimeLayout = "2006-01-02T15:04:05"

// Consultation mirrors the backend DTO. Date-times are kept as the backend's
// ISO local date-time strings.
type Consultation struct {
	ID                  int64    `json:"id,omitempty"`
	UserID              int64    `json:"userId,omitempty"`
	DoctorID            int64    `json:"doctorId,omitempty"`
	AppointmentDateTime string   `json:"appointmentDateTime,omitempty"`
	Status              Status   `json:"status,omitempty"`
	Type                Type     `json:"type,omitempty"`
	Symptoms            string   `json:"symptoms,omitempty"`
	Diagnosis           string   `json:"diagnosis,omitempty"`
	Prescription        string   `json:"prescription,omitempty"`
	Notes               string   `json:"notes,omitempty"`
	ConsultationFee     *float64 `json:"consultationFee,omitempty"`
	MeetingLink         string   `json:"meetingLink,omitempty"`
	CreatedAt           string   `json:"createdAt,omitempty"`
	UpdatedAt           string   `json:"updatedAt,omitempty"`
}

// Diagnosis is the set of fields recorded by UpdateDiagnosis. All three are
// always sent; the backend requires each parameter even when empty.
type Diagnosis struct {
	Diagnosis    string
	Prescription string
	Notes        string
}
