package uow

import (
	"context"

	"ministry-budget-api/internal/domain/form"
	"ministry-budget-api/internal/domain/ministry"
	"ministry-budget-api/internal/domain/user"
)

// Repos bundles the repositories bound to one transaction. The audit
// appender is deliberately absent: audit writes happen outside the
// transaction so a failed append cannot roll back the mutation.
type Repos struct {
	Forms      form.Repository
	Events     form.EventRepository
	Goals      form.GoalRepository
	Users      user.Repository
	Ministries ministry.Repository
	EventTypes ministry.EventTypeRepository
}

type UnitOfWork interface {
	// WithinTx runs fn inside a single transaction.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinFormTx locks the form row first, then runs fn. This is the
	// serialization point for concurrent workflow actions on one form.
	WithinFormTx(ctx context.Context, formID uint64, fn func(r Repos, f *form.Form) error) error
}
