package workflow

import (
	"time"

	domainForm "ministry-budget-api/internal/domain/form"

	"gorm.io/datatypes"
)

type FormDTO struct {
	ID               uint64            `json:"id"`
	FormNumber       string            `json:"form_number"`
	MinistryID       uint64            `json:"ministry_id"`
	MinistryLeaderID uint64            `json:"ministry_leader_id"`
	Sections         datatypes.JSON    `json:"sections"`
	Status           domainForm.Status `json:"status"`
	PillarComments   string            `json:"pillar_comments,omitempty"`
	PastorComments   string            `json:"pastor_comments,omitempty"`
	SubmittedAt      *time.Time        `json:"submitted_at"`
	PillarApprovedAt *time.Time        `json:"pillar_approved_at"`
	PastorApprovedAt *time.Time        `json:"pastor_approved_at"`
	RejectedAt       *time.Time        `json:"rejected_at"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func toDTO(f *domainForm.Form) *FormDTO {
	return &FormDTO{
		ID:               f.ID,
		FormNumber:       f.FormNumber,
		MinistryID:       f.MinistryID,
		MinistryLeaderID: f.MinistryLeaderID,
		Sections:         f.Sections,
		Status:           f.Status,
		PillarComments:   f.PillarComments,
		PastorComments:   f.PastorComments,
		SubmittedAt:      f.SubmittedAt,
		PillarApprovedAt: f.PillarApprovedAt,
		PastorApprovedAt: f.PastorApprovedAt,
		RejectedAt:       f.RejectedAt,
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
	}
}
