package audit

import (
	"context"
	"time"
)

// Action labels recorded against audit entries.
const (
	ActionFormCreated      = "form_created"
	ActionFormUpdated      = "form_updated"
	ActionFormSubmitted    = "form_submitted"
	ActionFormApproved     = "form_approved"
	ActionFormRejected     = "form_rejected"
	ActionFormAmended      = "form_amended"
	ActionEventCreated     = "event_created"
	ActionEventUpdated     = "event_updated"
	ActionEventDeleted     = "event_deleted"
	ActionGoalCreated      = "goal_created"
	ActionGoalUpdated      = "goal_updated"
	ActionGoalDeleted      = "goal_deleted"
	ActionMinistryCreated  = "ministry_created"
	ActionMinistryUpdated  = "ministry_updated"
	ActionMinistryDeleted  = "ministry_deleted"
	ActionEventTypeCreated = "event_type_created"
	ActionEventTypeUpdated = "event_type_updated"
	ActionEventTypeDeleted = "event_type_deleted"
	ActionUserCreated      = "user_created"
	ActionUserUpdated      = "user_updated"
	ActionUserDeleted      = "user_deleted"
	ActionPINChanged       = "pin_change"
)

// Entry is an append-only audit record. FormID is nil for actions that are
// not tied to a form (user or reference-data management).
type Entry struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	FormID    *uint64   `gorm:"index:idx_audit_form" json:"form_id"`
	UserID    uint64    `gorm:"index:idx_audit_user" json:"user_id"`
	Action    string    `gorm:"size:50" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string { return "audit_logs" }

// Appender appends entries to the audit log. Callers treat it as
// fire-and-forget: a failed append must never roll back the mutation it
// describes.
type Appender interface {
	Append(ctx context.Context, e *Entry) error
}

// Log is the full append-and-read surface of the audit trail.
type Log interface {
	Appender
	// ListByForm returns the trail for one form, oldest first.
	ListByForm(ctx context.Context, formID uint64) ([]Entry, error)
}
