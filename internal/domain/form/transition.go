package form

import (
	"fmt"
	"time"

	"ministry-budget-api/internal/domain/user"
)

type Action string

const (
	ActionSubmit  Action = "submit"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

type transition struct {
	next  Status
	roles []user.Role
	stamp func(*Form, time.Time)
}

// table is the single source of truth for the form lifecycle:
// draft -> pending_pillar -> pending_pastor -> approved, with rejected
// reachable from either pending stage. Anything not listed here is an
// invalid transition.
var table = map[Status]map[Action]transition{
	StatusDraft: {
		ActionSubmit: {
			next:  StatusPendingPillar,
			roles: []user.Role{user.RoleMinistryLeader, user.RoleAdmin},
			stamp: func(f *Form, now time.Time) { f.SubmittedAt = &now },
		},
	},
	StatusPendingPillar: {
		ActionApprove: {
			next:  StatusPendingPastor,
			roles: []user.Role{user.RolePillar, user.RoleAdmin},
			stamp: func(f *Form, now time.Time) { f.PillarApprovedAt = &now },
		},
		ActionReject: {
			next:  StatusRejected,
			roles: []user.Role{user.RolePillar, user.RoleAdmin},
			stamp: func(f *Form, now time.Time) { f.RejectedAt = &now },
		},
	},
	StatusPendingPastor: {
		ActionApprove: {
			next:  StatusApproved,
			roles: []user.Role{user.RolePastor, user.RoleAdmin},
			stamp: func(f *Form, now time.Time) { f.PastorApprovedAt = &now },
		},
		ActionReject: {
			next:  StatusRejected,
			roles: []user.Role{user.RolePastor, user.RoleAdmin},
			stamp: func(f *Form, now time.Time) { f.RejectedAt = &now },
		},
	},
}

// Apply advances f according to the transition table, setting the stage
// timestamp that belongs to the transition. It mutates f only on success;
// callers persist the whole form inside one transaction so the check and
// the write are atomic.
func Apply(f *Form, act Action, role user.Role, now time.Time) error {
	tr, ok := table[f.Status][act]
	if !ok {
		return fmt.Errorf("%w: cannot %s a %s form", ErrInvalidStage, act, f.Status)
	}
	allowed := false
	for _, r := range tr.roles {
		if r == role {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: role %s may not %s this form", ErrForbidden, role, act)
	}
	now = now.UTC()
	f.Status = tr.next
	tr.stamp(f, now)
	return nil
}

// Amend returns a rejected form to draft so its owner can revise and
// resubmit. Stage timestamps and decision comments are cleared; the next
// submission cycle produces a fresh set.
func Amend(f *Form) error {
	if f.Status != StatusRejected {
		return fmt.Errorf("%w: only rejected forms can be amended", ErrInvalidStage)
	}
	f.Status = StatusDraft
	f.SubmittedAt = nil
	f.PillarApprovedAt = nil
	f.PastorApprovedAt = nil
	f.RejectedAt = nil
	f.PillarComments = ""
	f.PastorComments = ""
	return nil
}
