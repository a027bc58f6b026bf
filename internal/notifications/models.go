package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType names a plan event on the plan-events topic.
type EventType string

const (
	EventTypePlanSaved     EventType = "PLAN_SAVED"
	EventTypeStandAssigned EventType = "STAND_ASSIGNED"
)

// PlanEvent is the message published after a plan is saved. STAND_ASSIGNED
// events carry the stand and the exhibitor that was newly bound to it.
type PlanEvent struct {
	ID         uuid.UUID `json:"id"`
	Type       EventType `json:"type"`
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`

	// PLAN_SAVED
	StandCount int `json:"stand_count,omitempty"`
	ZoneCount  int `json:"zone_count,omitempty"`

	// STAND_ASSIGNED
	StandID       string `json:"stand_id,omitempty"`
	StandSize     string `json:"stand_size,omitempty"`
	StandX        int    `json:"stand_x,omitempty"`
	StandY        int    `json:"stand_y,omitempty"`
	ZoneName      string `json:"zone_name,omitempty"`
	ExhibitorID   string `json:"exhibitor_id,omitempty"`
	BrandName     string `json:"brand_name,omitempty"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
}

func NewPlanSavedEvent(eventID string, stands, zones int) *PlanEvent {
	return &PlanEvent{
		ID:         uuid.New(),
		Type:       EventTypePlanSaved,
		EventID:    eventID,
		OccurredAt: time.Now().UTC(),
		StandCount: stands,
		ZoneCount:  zones,
	}
}

// StandAssignment describes one exhibitor newly bound to a stand.
type StandAssignment struct {
	StandID       string
	StandSize     string
	X, Y          int
	ZoneName      string
	ExhibitorID   string
	BrandName     string
	ContactPerson string
	Email         string
}

func NewStandAssignedEvent(eventID string, a StandAssignment) *PlanEvent {
	return &PlanEvent{
		ID:            uuid.New(),
		Type:          EventTypeStandAssigned,
		EventID:       eventID,
		OccurredAt:    time.Now().UTC(),
		StandID:       a.StandID,
		StandSize:     a.StandSize,
		StandX:        a.X,
		StandY:        a.Y,
		ZoneName:      a.ZoneName,
		ExhibitorID:   a.ExhibitorID,
		BrandName:     a.BrandName,
		ContactPerson: a.ContactPerson,
		Email:         a.Email,
	}
}

// GetPartitionKey keeps every event of one plan on the same partition.
func (e *PlanEvent) GetPartitionKey() string {
	return e.EventID
}

func (e *PlanEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "PENDING"
	NotificationStatusSending NotificationStatus = "SENDING"
	NotificationStatusSent    NotificationStatus = "SENT"
	NotificationStatusFailed  NotificationStatus = "FAILED"
)

// EmailNotification is one mail the worker sends.
type EmailNotification struct {
	ID             uuid.UUID          `json:"id"`
	EventType      EventType          `json:"event_type"`
	RecipientEmail string             `json:"recipient_email"`
	RecipientName  string             `json:"recipient_name"`
	Subject        string             `json:"subject"`
	TextBody       string             `json:"text_body"`
	HTMLBody       string             `json:"html_body"`
	Status         NotificationStatus `json:"status"`
	RetryCount     int                `json:"retry_count"`
	LastError      *string            `json:"last_error,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	SentAt         *time.Time         `json:"sent_at,omitempty"`
}

func (en *EmailNotification) MarkSent() {
	now := time.Now()
	en.Status = NotificationStatusSent
	en.SentAt = &now
}

func (en *EmailNotification) MarkFailed(err error) {
	en.Status = NotificationStatusFailed
	errorStr := err.Error()
	en.LastError = &errorStr
}
