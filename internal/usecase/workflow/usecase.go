// Package workflow owns the form approval lifecycle: submission and the
// pillar/pastor decisions. Every mutation runs inside one transaction with
// the form row locked, so a concurrent action on the same form observes the
// already-advanced state and fails the transition lookup.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ministry-budget-api/internal/domain/audit"
	domainForm "ministry-budget-api/internal/domain/form"
	"ministry-budget-api/internal/domain/uow"
	"ministry-budget-api/internal/domain/user"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Usecase struct {
	forms  domainForm.Repository
	audits audit.Appender
	uow    uow.UnitOfWork
	log    *logrus.Logger
}

func NewUsecase(forms domainForm.Repository, audits audit.Appender, tx uow.UnitOfWork, log *logrus.Logger) *Usecase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Usecase{forms: forms, audits: audits, uow: tx, log: log}
}

type DecideInput struct {
	FormID   uint64
	Action   string
	Comments string
}

// Submit moves a draft form into pending_pillar. Ministry leaders may only
// submit their own forms; admins may submit any.
func (u *Usecase) Submit(ctx context.Context, formID uint64, actor user.Actor) (*FormDTO, error) {
	var dto *FormDTO
	err := u.uow.WithinFormTx(ctx, formID, func(r uow.Repos, f *domainForm.Form) error {
		if actor.Role == user.RoleMinistryLeader && f.MinistryLeaderID != actor.ID {
			return fmt.Errorf("%w: you can only submit your own forms", domainForm.ErrForbidden)
		}
		if err := domainForm.Apply(f, domainForm.ActionSubmit, actor.Role, time.Now()); err != nil {
			return err
		}
		if err := r.Forms.Save(ctx, f); err != nil {
			return err
		}
		dto = toDTO(f)
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	u.record(ctx, &dto.ID, actor.ID, audit.ActionFormSubmitted,
		fmt.Sprintf("Form %s submitted for approval", dto.FormNumber))
	return dto, nil
}

// Decide applies an approve/reject action at the form's current stage. The
// action value is validated before the transaction starts; a malformed
// action is a validation failure, not a state-machine failure.
func (u *Usecase) Decide(ctx context.Context, in DecideInput, actor user.Actor) (*FormDTO, error) {
	act := domainForm.Action(in.Action)
	if act != domainForm.ActionApprove && act != domainForm.ActionReject {
		return nil, fmt.Errorf("%w: action must be either %q or %q",
			domainForm.ErrValidation, domainForm.ActionApprove, domainForm.ActionReject)
	}

	var dto *FormDTO
	err := u.uow.WithinFormTx(ctx, in.FormID, func(r uow.Repos, f *domainForm.Form) error {
		if d := domainForm.CanApprove(actor, f); !d.Allowed {
			return d.Denial()
		}
		stage := f.Status
		if err := domainForm.Apply(f, act, actor.Role, time.Now()); err != nil {
			return err
		}
		if in.Comments != "" {
			switch stage {
			case domainForm.StatusPendingPillar:
				f.PillarComments = in.Comments
			case domainForm.StatusPendingPastor:
				f.PastorComments = in.Comments
			}
		}
		if err := r.Forms.Save(ctx, f); err != nil {
			return err
		}
		dto = toDTO(f)
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	action := audit.ActionFormApproved
	if act == domainForm.ActionReject {
		action = audit.ActionFormRejected
	}
	details := fmt.Sprintf("Form %s: %s at %s stage", dto.FormNumber, act, dto.Status)
	if in.Comments != "" {
		details += ". Comments: " + in.Comments
	}
	u.record(ctx, &dto.ID, actor.ID, action, details)
	return dto, nil
}

// CanEdit reports whether actor may edit the form, with the specific reason
// on denial. A missing form is reported through the decision, not an error.
func (u *Usecase) CanEdit(ctx context.Context, formID uint64, actor user.Actor) (domainForm.Decision, error) {
	f, err := u.forms.GetByID(ctx, formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainForm.CanEdit(actor, nil), nil
		}
		return domainForm.Decision{}, err
	}
	return domainForm.CanEdit(actor, f), nil
}

func (u *Usecase) record(ctx context.Context, formID *uint64, actorID uint64, action, details string) {
	e := &audit.Entry{FormID: formID, UserID: actorID, Action: action, Details: details}
	if err := u.audits.Append(ctx, e); err != nil {
		u.log.WithError(err).WithField("action", action).Warn("audit append failed")
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: no such form", domainForm.ErrNotFound)
	}
	return err
}
