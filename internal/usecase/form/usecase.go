// Package form implements form CRUD: creation with year-scoped numbering,
// role-filtered listing, draft editing, and amendment of rejected forms.
package form

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ministry-budget-api/internal/domain/audit"
	domainForm "ministry-budget-api/internal/domain/form"
	"ministry-budget-api/internal/domain/uow"
	"ministry-budget-api/internal/domain/user"
	"ministry-budget-api/pkg/formnum"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// numberAttempts bounds the retry loop when two creations race for the same
// form number. Each retry re-reads the max sequence inside a fresh
// transaction.
const numberAttempts = 3

type Usecase struct {
	forms  domainForm.Repository
	events domainForm.EventRepository
	goals  domainForm.GoalRepository
	audits audit.Appender
	uow    uow.UnitOfWork
	log    *logrus.Logger
}

func NewUsecase(forms domainForm.Repository, events domainForm.EventRepository, goals domainForm.GoalRepository, audits audit.Appender, tx uow.UnitOfWork, log *logrus.Logger) *Usecase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Usecase{forms: forms, events: events, goals: goals, audits: audits, uow: tx, log: log}
}

type CreateInput struct {
	MinistryID uint64
	Sections   datatypes.JSON
}

type UpdateInput struct {
	FormID   uint64
	Sections datatypes.JSON
}

// Create opens a new draft form and assigns the next TVC number for the
// current year. The sequence read and the insert share one transaction; a
// duplicate-number conflict is retried a bounded number of times.
func (u *Usecase) Create(ctx context.Context, in CreateInput, actor user.Actor) (*FormDTO, error) {
	if actor.Role != user.RoleMinistryLeader && actor.Role != user.RoleAdmin {
		return nil, fmt.Errorf("%w: your role does not permit creating forms", domainForm.ErrForbidden)
	}
	if in.MinistryID == 0 {
		return nil, fmt.Errorf("%w: ministry id is required", domainForm.ErrValidation)
	}

	year := time.Now().UTC().Year()
	var created *domainForm.Form
	var err error
	for attempt := 0; attempt < numberAttempts; attempt++ {
		err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
			m, err := r.Ministries.GetByID(ctx, in.MinistryID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: unknown ministry", domainForm.ErrValidation)
				}
				return err
			}
			if !m.Active {
				return fmt.Errorf("%w: ministry is inactive", domainForm.ErrValidation)
			}

			seq, err := r.Forms.MaxSequence(ctx, year)
			if err != nil {
				return err
			}
			f := &domainForm.Form{
				FormNumber:       formnum.Format(year, seq+1),
				MinistryID:       in.MinistryID,
				MinistryLeaderID: actor.ID,
				Sections:         in.Sections,
				Status:           domainForm.StatusDraft,
			}
			if err := r.Forms.Create(ctx, f); err != nil {
				return err
			}
			created = f
			return nil
		})
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			u.log.WithField("year", year).Warn("form number collision, retrying")
			continue
		}
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not allocate a form number", domainForm.ErrConflict)
	}

	u.record(ctx, &created.ID, actor.ID, audit.ActionFormCreated,
		fmt.Sprintf("Created form %s", created.FormNumber))
	return toDTO(created), nil
}

func (u *Usecase) Get(ctx context.Context, formID uint64, actor user.Actor) (*FormDTO, error) {
	f, err := u.visibleForm(ctx, formID, actor)
	if err != nil {
		return nil, err
	}
	return toDTO(f), nil
}

// List returns the forms visible to the actor: leaders see their own,
// pillars the forms of ministries they oversee, pastors and admins all.
func (u *Usecase) List(ctx context.Context, actor user.Actor) ([]FormDTO, error) {
	fl, empty := FilterFor(actor)
	if empty {
		return []FormDTO{}, nil
	}
	forms, err := u.forms.List(ctx, fl)
	if err != nil {
		return nil, err
	}
	out := make([]FormDTO, 0, len(forms))
	for i := range forms {
		out = append(out, *toDTO(&forms[i]))
	}
	return out, nil
}

// FilterFor builds the role-scoped repository filter for actor. The second
// return value is true when the actor can see no forms at all (a pillar
// overseeing no ministries).
func FilterFor(actor user.Actor) (domainForm.Filter, bool) {
	switch actor.Role {
	case user.RoleMinistryLeader:
		return domainForm.Filter{MinistryLeaderID: actor.ID}, false
	case user.RolePillar:
		if len(actor.MinistryIDs) == 0 {
			return domainForm.Filter{}, true
		}
		return domainForm.Filter{MinistryIDs: actor.MinistryIDs}, false
	default:
		return domainForm.Filter{}, false
	}
}

// Update replaces the sections payload of a draft form, gated by the
// permission evaluator.
func (u *Usecase) Update(ctx context.Context, in UpdateInput, actor user.Actor) (*FormDTO, error) {
	var dto *FormDTO
	err := u.uow.WithinFormTx(ctx, in.FormID, func(r uow.Repos, f *domainForm.Form) error {
		if d := domainForm.CanEdit(actor, f); !d.Allowed {
			return d.Denial()
		}
		f.Sections = in.Sections
		if err := r.Forms.Save(ctx, f); err != nil {
			return err
		}
		dto = toDTO(f)
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	u.record(ctx, &dto.ID, actor.ID, audit.ActionFormUpdated,
		fmt.Sprintf("Updated form %s", dto.FormNumber))
	return dto, nil
}

// Amend reopens a rejected form as a draft so the owner can revise and
// resubmit it.
func (u *Usecase) Amend(ctx context.Context, formID uint64, actor user.Actor) (*FormDTO, error) {
	var dto *FormDTO
	err := u.uow.WithinFormTx(ctx, formID, func(r uow.Repos, f *domainForm.Form) error {
		if actor.Role != user.RoleAdmin {
			if actor.Role != user.RoleMinistryLeader || f.MinistryLeaderID != actor.ID {
				return fmt.Errorf("%w: you can only amend your own forms", domainForm.ErrForbidden)
			}
		}
		if err := domainForm.Amend(f); err != nil {
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
	u.record(ctx, &dto.ID, actor.ID, audit.ActionFormAmended,
		fmt.Sprintf("Form %s returned to draft for amendment", dto.FormNumber))
	return dto, nil
}

// NextNumber previews the form number the next creation in a year would
// receive. The actual assignment still happens transactionally in Create.
func (u *Usecase) NextNumber(ctx context.Context, year int) (string, error) {
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	seq, err := u.forms.MaxSequence(ctx, year)
	if err != nil {
		return "", err
	}
	return formnum.Format(year, seq+1), nil
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
