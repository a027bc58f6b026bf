package plans

import (
	"encoding/json"
	"fmt"
	"time"

	"standplanner/internal/layout"
)

// PlanRecord stores one event's plan as a single JSON document. The counts
// are denormalized for listing without decoding the document.
type PlanRecord struct {
	EventID    string    `gorm:"primaryKey;size:64" json:"eventId"`
	Document   string    `gorm:"type:jsonb;not null" json:"-"`
	StandCount int       `gorm:"not null;default:0" json:"standCount"`
	ZoneCount  int       `gorm:"not null;default:0" json:"zoneCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (PlanRecord) TableName() string {
	return "event_plans"
}

func NewPlanRecord(plan *layout.EventPlan) (*PlanRecord, error) {
	doc, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}
	return &PlanRecord{
		EventID:    plan.EventID,
		Document:   string(doc),
		StandCount: len(plan.Stands),
		ZoneCount:  len(plan.Zones),
	}, nil
}

// Plan decodes the stored document.
func (r *PlanRecord) Plan() (*layout.EventPlan, error) {
	var plan layout.EventPlan
	if err := json.Unmarshal([]byte(r.Document), &plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan for event %s: %w", r.EventID, err)
	}
	plan.EventID = r.EventID
	plan.Normalize()
	return &plan, nil
}

// SaveResult summarizes a completed save.
type SaveResult struct {
	EventID       string    `json:"eventId"`
	StandCount    int       `json:"standCount"`
	ZoneCount     int       `json:"zoneCount"`
	NewlyAssigned int       `json:"newlyAssigned"`
	Warnings      []string  `json:"warnings"`
	SavedAt       time.Time `json:"savedAt"`
}
