package applications

import (
	"time"

	"standplanner/internal/layout"
)

// Application is an exhibitor's request for a stand at one event. Curation
// and billing move it through PENDING, APPROVED/REJECTED/WAITLIST and PAID;
// the planner only reads it.
type Application struct {
	ID            string              `gorm:"primaryKey;size:64" json:"id"`
	EventID       string              `gorm:"size:64;not null;index" json:"eventId"`
	BrandName     string              `gorm:"not null" json:"brandName"`
	ContactPerson string              `json:"contactPerson"`
	Phone         string              `json:"phone"`
	Email         string              `json:"email"`
	Description   string              `json:"description,omitempty"`
	RequestedSize layout.SpotSize     `gorm:"type:varchar(1);not null" json:"zone"`
	ZoneCategory  layout.ZoneCategory `gorm:"type:varchar(32)" json:"zoneCategory"`
	Status        layout.AppStatus    `gorm:"type:varchar(16);not null;default:PENDING" json:"status"`
	SubmittedAt   time.Time           `json:"submittedAt"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// ToExhibitor returns the read-only view the floor-plan core works with.
func (a Application) ToExhibitor() layout.Exhibitor {
	return layout.Exhibitor{
		ID:            a.ID,
		BrandName:     a.BrandName,
		ContactPerson: a.ContactPerson,
		Phone:         a.Phone,
		Email:         a.Email,
		RequestedSize: a.RequestedSize,
		ZoneCategory:  a.ZoneCategory,
		Status:        a.Status,
	}
}

type ApplicationFilters struct {
	Status string `form:"status" binding:"omitempty,appstatus"`
	Search string `form:"q" binding:"omitempty,max=100"`
}
