// Package notification serves the per-actor attention list. The list is
// derived fresh on every call; staleness is bounded by the client's polling
// interval, and dismissal keys arrive from the client with each request.
package notification

import (
	"context"

	domainForm "ministry-budget-api/internal/domain/form"
	"ministry-budget-api/internal/domain/ministry"
	"ministry-budget-api/internal/domain/notification"
	"ministry-budget-api/internal/domain/user"
	ucForm "ministry-budget-api/internal/usecase/form"
)

type Usecase struct {
	forms      domainForm.Repository
	ministries ministry.Repository
}

func NewUsecase(forms domainForm.Repository, ministries ministry.Repository) *Usecase {
	return &Usecase{forms: forms, ministries: ministries}
}

// triggering statuses per role: only these can produce a notification, so
// the query is narrowed accordingly.
func triggerStatuses(role user.Role) []domainForm.Status {
	switch role {
	case user.RoleMinistryLeader:
		return []domainForm.Status{domainForm.StatusRejected, domainForm.StatusApproved}
	case user.RolePillar:
		return []domainForm.Status{domainForm.StatusPendingPillar}
	case user.RolePastor:
		return []domainForm.Status{domainForm.StatusPendingPastor}
	}
	return nil
}

// List derives the notifications for actor, suppressing entries whose
// dismissal key appears in dismissed.
func (u *Usecase) List(ctx context.Context, actor user.Actor, dismissed []string) ([]notification.Notification, error) {
	statuses := triggerStatuses(actor.Role)
	if statuses == nil {
		return []notification.Notification{}, nil
	}
	fl, empty := ucForm.FilterFor(actor)
	if empty {
		return []notification.Notification{}, nil
	}
	fl.Statuses = statuses

	forms, err := u.forms.List(ctx, fl)
	if err != nil {
		return nil, err
	}

	names := map[uint64]string{}
	if actor.Role == user.RolePillar || actor.Role == user.RolePastor {
		ms, err := u.ministries.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, m := range ms {
			names[m.ID] = m.Name
		}
	}

	return notification.Derive(forms, names, actor, notification.DismissSet(dismissed)), nil
}
