package form

import "context"

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	MinistryLeaderID uint64
	MinistryIDs      []uint64
	Statuses         []Status
}

type Repository interface {
	Create(ctx context.Context, f *Form) error
	GetByID(ctx context.Context, id uint64) (*Form, error)
	// GetByIDForUpdate locks the form row for the duration of the
	// surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Form, error)
	Save(ctx context.Context, f *Form) error
	List(ctx context.Context, fl Filter) ([]Form, error)

	// MaxSequence returns the highest form-number sequence already assigned
	// in a year, 0 when the year has no forms yet.
	MaxSequence(ctx context.Context, year int) (int, error)

	CountByMinistry(ctx context.Context, ministryID uint64) (int64, error)
	CountByLeader(ctx context.Context, leaderID uint64) (int64, error)
	CountByStatus(ctx context.Context, statuses ...Status) (int64, error)
	// ApprovedBudgetTotal sums sections->total_budget across approved forms.
	ApprovedBudgetTotal(ctx context.Context) (float64, error)
}

// EventRepository manages the events attached to forms. Lookups and deletes
// are scoped by form id so an event can never be reached through another
// form's URL.
type EventRepository interface {
	Create(ctx context.Context, e *Event) error
	GetByForm(ctx context.Context, formID, eventID uint64) (*Event, error)
	// ListByForm returns a form's events ordered by event date.
	ListByForm(ctx context.Context, formID uint64) ([]Event, error)
	Save(ctx context.Context, e *Event) error
	Delete(ctx context.Context, formID, eventID uint64) error
}

// GoalRepository manages the goals attached to forms, scoped like
// EventRepository.
type GoalRepository interface {
	Create(ctx context.Context, g *Goal) error
	GetByForm(ctx context.Context, formID, goalID uint64) (*Goal, error)
	// ListByForm returns a form's goals in creation order.
	ListByForm(ctx context.Context, formID uint64) ([]Goal, error)
	Save(ctx context.Context, g *Goal) error
	Delete(ctx context.Context, formID, goalID uint64) error
}
