// Package notification derives the transient "needs your attention" list
// from the current form set. Nothing here is persisted: the list is
// recomputed on every poll, and dismissal state lives client-side as a set
// of opaque keys.
package notification

import (
	"fmt"
	"sort"
	"time"

	"ministry-budget-api/internal/domain/form"
	"ministry-budget-api/internal/domain/user"
)

type Type string

const (
	TypeRejected      Type = "rejected"
	TypeApproved      Type = "approved"
	TypePendingPillar Type = "pending_pillar"
	TypePendingPastor Type = "pending_pastor"
)

type Notification struct {
	FormID     uint64    `json:"form_id"`
	FormNumber string    `json:"form_number"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       Type      `json:"type"`
	CreatedAt  time.Time `json:"created_at"`
	// DismissKey is what the client stores to suppress this entry. The key
	// embeds the trigger timestamp, so a form that leaves and later
	// re-enters the same state produces a new key and re-surfaces.
	DismissKey string `json:"dismiss_key"`
}

// Key builds the dismissal key for a form/type/trigger-time combination.
func Key(formID uint64, t Type, ts time.Time) string {
	return fmt.Sprintf("%d:%s:%d", formID, t, ts.UTC().Unix())
}

// DismissSet turns the client-supplied key list into a lookup set.
func DismissSet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

// Derive computes the notification list for actor from the full form set.
// ministryNames maps ministry id to display name for the approval-request
// messages. Results are sorted newest first.
func Derive(forms []form.Form, ministryNames map[uint64]string, actor user.Actor, dismissed map[string]bool) []Notification {
	out := make([]Notification, 0, len(forms))
	for i := range forms {
		f := &forms[i]
		n, ok := match(f, ministryNames, actor)
		if !ok || dismissed[n.DismissKey] {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].FormID > out[j].FormID
	})
	return out
}

func match(f *form.Form, ministryNames map[uint64]string, actor user.Actor) (Notification, bool) {
	switch actor.Role {
	case user.RoleMinistryLeader:
		if f.MinistryLeaderID != actor.ID {
			return Notification{}, false
		}
		switch f.Status {
		case form.StatusRejected:
			return build(f, TypeRejected, "Form Rejected",
				fmt.Sprintf("Form #%s was rejected.", f.FormNumber)), true
		case form.StatusApproved:
			return build(f, TypeApproved, "Form Approved",
				fmt.Sprintf("Form #%s has been fully approved!", f.FormNumber)), true
		}
	case user.RolePillar:
		if f.Status == form.StatusPendingPillar && actor.Oversees(f.MinistryID) {
			return build(f, TypePendingPillar, "Approval Required",
				approvalMessage(f, ministryNames)), true
		}
	case user.RolePastor:
		if f.Status == form.StatusPendingPastor {
			return build(f, TypePendingPastor, "Approval Required",
				approvalMessage(f, ministryNames)), true
		}
	}
	return Notification{}, false
}

func approvalMessage(f *form.Form, ministryNames map[uint64]string) string {
	name := ministryNames[f.MinistryID]
	if name == "" {
		name = "a ministry"
	}
	return fmt.Sprintf("Form #%s from %s needs your approval.", f.FormNumber, name)
}

func build(f *form.Form, t Type, title, message string) Notification {
	ts := f.StageTime()
	return Notification{
		FormID:     f.ID,
		FormNumber: f.FormNumber,
		Title:      title,
		Message:    message,
		Type:       t,
		CreatedAt:  ts,
		DismissKey: Key(f.ID, t, ts),
	}
}
