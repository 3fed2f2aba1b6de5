package uowmock

import (
	"context"

	"ministry-budget-api/internal/domain/form"
	"ministry-budget-api/internal/domain/uow"

	"gorm.io/gorm"
)

var _ uow.UnitOfWork = (*UoW)(nil)

// UoW runs transaction callbacks directly against the configured repos,
// without any real transaction. WithinFormTx resolves the form through
// Repos.Forms.GetByIDForUpdate unless GetFormFn overrides it.
type UoW struct {
	Repos uow.Repos

	// BeginErr, when set, fails every transactional call up front.
	BeginErr error

	// GetFormFn overrides the form lookup done by WithinFormTx.
	GetFormFn func(ctx context.Context, formID uint64) (*form.Form, error)
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.BeginErr != nil {
		return m.BeginErr
	}
	return fn(m.Repos)
}

func (m *UoW) WithinFormTx(ctx context.Context, formID uint64, fn func(r uow.Repos, f *form.Form) error) error {
	if m.BeginErr != nil {
		return m.BeginErr
	}
	var (
		f   *form.Form
		err error
	)
	switch {
	case m.GetFormFn != nil:
		f, err = m.GetFormFn(ctx, formID)
	case m.Repos.Forms != nil:
		f, err = m.Repos.Forms.GetByIDForUpdate(ctx, formID)
	default:
		err = gorm.ErrRecordNotFound
	}
	if err != nil {
		return err
	}
	return fn(m.Repos, f)
}
