package form

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft         Status = "draft"
	StatusPendingPillar Status = "pending_pillar"
	StatusPendingPastor Status = "pending_pastor"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
)

// Form is a ministry budget form moving through the approval workflow.
// Each stage timestamp is set exactly once, on the transition that produces
// it, and cleared only when the form is amended back to draft.
type Form struct {
	ID               uint64         `gorm:"primaryKey;column:id" json:"id"`
	FormNumber       string         `gorm:"size:20;uniqueIndex:ux_forms_number" json:"form_number"`
	MinistryID       uint64         `gorm:"index:idx_forms_ministry" json:"ministry_id"`
	MinistryLeaderID uint64         `gorm:"index:idx_forms_leader" json:"ministry_leader_id"`
	Sections         datatypes.JSON `gorm:"type:jsonb" json:"sections"`
	Status           Status         `gorm:"size:20;default:'draft';index:idx_forms_status" json:"status"`
	PillarComments   string         `gorm:"type:text" json:"pillar_comments,omitempty"`
	PastorComments   string         `gorm:"type:text" json:"pastor_comments,omitempty"`
	SubmittedAt      *time.Time     `json:"submitted_at"`
	PillarApprovedAt *time.Time     `json:"pillar_approved_at"`
	PastorApprovedAt *time.Time     `json:"pastor_approved_at"`
	RejectedAt       *time.Time     `json:"rejected_at"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Form) TableName() string { return "ministry_forms" }

// StageTime returns the timestamp of the transition that produced the
// current status, falling back to UpdatedAt when the stage timestamp is
// missing. Notification ordering keys off this value.
func (f *Form) StageTime() time.Time {
	var ts *time.Time
	switch f.Status {
	case StatusPendingPillar:
		ts = f.SubmittedAt
	case StatusPendingPastor:
		ts = f.PillarApprovedAt
	case StatusApproved:
		ts = f.PastorApprovedAt
	case StatusRejected:
		ts = f.RejectedAt
	}
	if ts != nil {
		return *ts
	}
	return f.UpdatedAt
}
