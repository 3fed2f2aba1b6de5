package form

import (
	"fmt"

	"ministry-budget-api/internal/domain/user"
)

// Decision is the outcome of a permission check. Reason is always set on
// denial and names the specific condition that failed, so callers can
// surface it instead of a generic "forbidden".
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`

	err error
}

func allow() Decision { return Decision{Allowed: true} }

func deny(sentinel error, reason string) Decision {
	return Decision{Reason: reason, err: sentinel}
}

// Denial returns the decision as an error wrapping the matching sentinel,
// or nil when the decision allows.
func (d Decision) Denial() error {
	if d.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", d.err, d.Reason)
}

// CanEdit decides whether actor may edit f. Admins always may; ministry
// leaders may edit only their own forms and only while still in draft.
func CanEdit(actor user.Actor, f *Form) Decision {
	if f == nil {
		return deny(ErrNotFound, "form not found")
	}
	switch actor.Role {
	case user.RoleAdmin:
		return allow()
	case user.RoleMinistryLeader:
		if f.MinistryLeaderID != actor.ID {
			return deny(ErrForbidden, "you can only edit your own forms")
		}
		if f.Status != StatusDraft {
			return deny(ErrInvalidStage, "you can only edit draft forms")
		}
		return allow()
	default:
		return deny(ErrForbidden, "your role does not permit editing forms")
	}
}

// CanApprove decides whether actor may decide on f at its current stage.
func CanApprove(actor user.Actor, f *Form) Decision {
	if f == nil {
		return deny(ErrNotFound, "form not found")
	}
	switch actor.Role {
	case user.RoleAdmin:
		return allow()
	case user.RolePillar:
		if f.Status != StatusPendingPillar {
			return deny(ErrInvalidStage, "form is not pending pillar approval")
		}
		return allow()
	case user.RolePastor:
		if f.Status != StatusPendingPastor {
			return deny(ErrInvalidStage, "form is not pending pastor approval")
		}
		return allow()
	default:
		return deny(ErrForbidden, "your role does not permit approving forms")
	}
}
