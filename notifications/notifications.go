package notifications

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusSent      Status = "SENT"
	StatusDelivered Status = "DELIVERED"
	StatusRead      Status = "READ"
	StatusFailed    Status = "FAILED"
)

type Type string

const (
	TypeConsultationBooked    Type = "CONSULTATION_BOOKED"
	TypeConsultationReminder  Type = "CONSULTATION_REMINDER"
	TypeConsultationCompleted Type = "CONSULTATION_COMPLETED"
	TypeOrderPlaced           Type = "ORDER_PLACED"
	TypeOrderConfirmed        Type = "ORDER_CONFIRMED"
	TypeOrderShipped          Type = "ORDER_SHIPPED"
	TypeOrderDelivered        Type = "ORDER_DELIVERED"
	TypePaymentSuccess        Type = "PAYMENT_SUCCESS"
	TypePaymentFailed         Type = "PAYMENT_FAILED"
	TypePrescriptionUploaded  Type = "PRESCRIPTION_UPLOADED"
	TypeMedicineAvailable     Type = "MEDICINE_AVAILABLE"
	TypeAppointmentCancelled  Type = "APPOINTMENT_CANCELLED"
	TypeGeneral               Type = "GENERAL"
)

type Channel string

const (
	ChannelEmail Channel = "EMAIL"
	ChannelSMS   Channel = "SMS"
	ChannelPush  Channel = "PUSH"
	ChannelInApp Channel = "IN_APP"
)

// Notification mirrors the notification service DTO.
type Notification struct {
	ID            int64          `json:"id,omitempty"`
	UserID        int64          `json:"userId,omitempty"`
	Title         string         `json:"title,omitempty"`
	Message       string         `json:"message,omitempty"`
	Type          Type           `json:"type,omitempty"`
	Status        Status         `json:"status,omitempty"`
	Channel       Channel        `json:"channel,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     string         `json:"createdAt,omitempty"`
	UpdatedAt     string         `json:"updatedAt,omitempty"`
	SentAt        string         `json:"sentAt,omitempty"`
	FailureReason string         `json:"failureReason,omitempty"`
}

// EmailRequest is the body of SendEmail. UserID, To, Subject and Content are
// required by the backend.
type EmailRequest struct {
	UserID       int64          `json:"userId"`
	To           string         `json:"to"`
	Subject      string         `json:"subject"`
	Content      string         `json:"content"`
	TemplateName string         `json:"templateName,omitempty"`
	TemplateData map[string]any `json:"templateData,omitempty"`
	From         string         `json:"from,omitempty"`
	ReplyTo      string         `json:"replyTo,omitempty"`
	CC           []string       `json:"cc,omitempty"`
	BCC          []string       `json:"bcc,omitempty"`
	HTMLContent  bool           `json:"htmlContent"`
}

// SMSRequest is the body of SendSMS. An empty CountryCode leaves the
// backend default (+91) in place.
type SMSRequest struct {
	UserID       int64          `json:"userId"`
	PhoneNumber  string         `json:"phoneNumber"`
	Message      string         `json:"message"`
	TemplateID   string         `json:"templateId,omitempty"`
	TemplateData map[string]any `json:"templateData,omitempty"`
	SenderID     string         `json:"senderId,omitempty"`
	CountryCode  string         `json:"countryCode,omitempty"`
	Priority     bool           `json:"priority"`
}

// PushNotification is the body of SendPush. Zero Priority and TimeToLive
// are not sent, so the backend defaults apply.
type PushNotification struct {
	UserID      int64             `json:"userId"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	ClickAction string            `json:"clickAction,omitempty"`
	Data        map[string]string `json:"data,omitempty"`
	Topic       string            `json:"topic,omitempty"`
	Tokens      []string          `json:"tokens,omitempty"`
	Silent      bool              `json:"silent"`
	Priority    int               `json:"priority,omitempty"`
	TimeToLive  int               `json:"timeToLive,omitempty"`
}
