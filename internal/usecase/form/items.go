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

	"gorm.io/gorm"
)

type EventInput struct {
	EventDate         *time.Time
	EventName         string
	EventType         string
	Purpose           string
	Description       string
	EstimatedExpenses float64
	Notes             string
}

type GoalInput struct {
	Goal          string
	MeasureTarget string
	DueDate       *time.Time
}

// visibleForm fetches a form and applies the read scope: leaders only see
// their own forms, every other role sees all.
func (u *Usecase) visibleForm(ctx context.Context, formID uint64, actor user.Actor) (*domainForm.Form, error) {
	f, err := u.forms.GetByID(ctx, formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no such form", domainForm.ErrNotFound)
		}
		return nil, err
	}
	if actor.Role == user.RoleMinistryLeader && f.MinistryLeaderID != actor.ID {
		return nil, fmt.Errorf("%w: you can only view your own forms", domainForm.ErrForbidden)
	}
	return f, nil
}

func (u *Usecase) ListEvents(ctx context.Context, formID uint64, actor user.Actor) ([]domainForm.Event, error) {
	if _, err := u.visibleForm(ctx, formID, actor); err != nil {
		return nil, err
	}
	events, err := u.events.ListByForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []domainForm.Event{}
	}
	return events, nil
}

// AddEvent attaches an event to a form. The edit gate is the form's own:
// draft only, owner or admin.
func (u *Usecase) AddEvent(ctx context.Context, formID uint64, in EventInput, actor user.Actor) (*domainForm.Event, error) {
	var created *domainForm.Event
	err := u.uow.WithinFormTx(ctx, formID, func(r uow.Repos, f *domainForm.Form) error {
		if d := domainForm.CanEdit(actor, f); !d.Allowed {
			return d.Denial()
		}
		e := &domainForm.Event{
			FormID:            formID,
			EventDate:         in.EventDate,
			EventName:         in.EventName,
			EventType:         in.EventType,
			Purpose:           in.Purpose,
			Description:       in.Description,
			EstimatedExpenses: in.EstimatedExpenses,
			Notes:             in.Notes,
		}
		if err := r.Events.Create(ctx, e); err != nil {
			return err
		}
		created = e
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	u.record(ctx, &formID, actor.ID, audit.ActionEventCreated,
		fmt.Sprintf("Created event: %s", eventLabel(created.EventName)))
	return created, nil
}

func (u *Usecase) UpdateEvent(ctx context.Context, formID, eventID uint64, in EventInput, actor user.Actor) (*domainForm.Event, error) {
	var updated *domainForm.Event
	err := u.uow.WithinFormTx(ctx, formID, func(r uow.Repos, f *domainForm.Form) error {
		if d := domainForm.CanEdit(actor, f); !d.Allowed {
			return d.Denial()
		}
		e, err := r.Events.GetByForm(ctx, formID, eventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: no such event", domainForm.ErrNotFound)
			}
			return err
		}
		e.EventDate = in.EventDate
		e.EventName = in.EventName
		e.EventType = in.EventType
		e.Purpose = in.Purpose
		e.Description = in.Description
		e.EstimatedExpenses = in.EstimatedExpenses
		e.Notes = in.Notes
		if err := r.Events.Save(ctx, e); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	u.record(ctx, &formID, actor.ID, audit.ActionEventUpdated,
		fmt.Sprintf("Updated event: %s", eventLabel(updated.EventName)))
	return updated, nil
}

func (u *Usecase) DeleteEvent(ctx context.Context, formID, eventID uint64, actor user.Actor) error {
	var name string
	err := u.uow.WithinFormTx(ctx, formID, func(r uow.Repos, f *domainForm.Form) error {
		if d := domainForm.CanEdit(actor, f); !d.Allowed {
			return d.Denial()
		}
		e, err := r.Events.GetByForm(ctx, formID, eventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: no such event", domainForm.ErrNotFound)
			}
			return err
		}
		name = e.EventName
		return r.Events.Delete(ctx, formID, eventID)
	})
	if err != nil {
		return translate(err)
	}
	u.record(ctx, &formID, actor.ID, audit.ActionEventDeleted,
		fmt.Sprintf("Deleted event: %s", eventLabel(name)))
	return nil
}

func (u *Usecase) ListGoals(ctx context.Context, formID uint64, actor user.Actor) ([]domainForm.Goal, error) {
	if _, err := u.visibleForm(ctx, formID, actor); err != nil {
		return nil, err
	}
	goals, err := u.goals.ListByForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []domainForm.Goal{}
	}
	return goals, nil
}

func (u *Usecase) AddGoal(ctx context.Context, formID uint64, in GoalInput, actor user.Actor) (*domainForm.Goal, error) {
	if in.Goal == "" {
		return nil, fmt.Errorf("%w: goal text is required", domainForm.ErrValidation)
	}
	var created *domainForm.Goal
	err := u.uow.WithinFormTx(ctx, formID, func(r uow.Repos, f *domainForm.Form) error {
		if d := domainForm.CanEdit(actor, f); !d.Allowed {
			return d.Denial()
		}
		g := &domainForm.Goal{
			FormID:        formID,
			Goal:          in.Goal,
			MeasureTarget: in.MeasureTarget,
			DueDate:       in.DueDate,
		}
		if err := r.Goals.Create(ctx, g); err != nil {
			return err
		}
		created = g
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	u.record(ctx, &formID, actor.ID, audit.ActionGoalCreated,
		fmt.Sprintf("Created goal: %s", clip(created.Goal, 50)))
	return created, nil
}

func (u *Usecase) UpdateGoal(ctx context.Context, formID, goalID uint64, in GoalInput, actor user.Actor) (*domainForm.Goal, error) {
	if in.Goal == "" {
		return nil, fmt.Errorf("%w: goal text is required", domainForm.ErrValidation)
	}
	var updated *domainForm.Goal
	err := u.uow.WithinFormTx(ctx, formID, func(r uow.Repos, f *domainForm.Form) error {
		if d := domainForm.CanEdit(actor, f); !d.Allowed {
			return d.Denial()
		}
		g, err := r.Goals.GetByForm(ctx, formID, goalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: no such goal", domainForm.ErrNotFound)
			}
			return err
		}
		g.Goal = in.Goal
		g.MeasureTarget = in.MeasureTarget
		g.DueDate = in.DueDate
		if err := r.Goals.Save(ctx, g); err != nil {
			return err
		}
		updated = g
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	u.record(ctx, &formID, actor.ID, audit.ActionGoalUpdated,
		fmt.Sprintf("Updated goal: %s", clip(updated.Goal, 50)))
	return updated, nil
}

func (u *Usecase) DeleteGoal(ctx context.Context, formID, goalID uint64, actor user.Actor) error {
	var text string
	err := u.uow.WithinFormTx(ctx, formID, func(r uow.Repos, f *domainForm.Form) error {
		if d := domainForm.CanEdit(actor, f); !d.Allowed {
			return d.Denial()
		}
		g, err := r.Goals.GetByForm(ctx, formID, goalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: no such goal", domainForm.ErrNotFound)
			}
			return err
		}
		text = g.Goal
		return r.Goals.Delete(ctx, formID, goalID)
	})
	if err != nil {
		return translate(err)
	}
	u.record(ctx, &formID, actor.ID, audit.ActionGoalDeleted,
		fmt.Sprintf("Deleted goal: %s", clip(text, 50)))
	return nil
}

func eventLabel(name string) string {
	if name == "" {
		return "Untitled"
	}
	return name
}

// clip shortens audit detail text so a long goal cannot bloat the trail.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
