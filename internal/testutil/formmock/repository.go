package formmock

import (
	"context"

	domain "ministry-budget-api/internal/domain/form"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying form.Repository. Unfilled
// getters behave like an empty table.
type Repo struct {
	CreateFn              func(ctx context.Context, f *domain.Form) error
	GetByIDFn             func(ctx context.Context, id uint64) (*domain.Form, error)
	GetByIDForUpdateFn    func(ctx context.Context, id uint64) (*domain.Form, error)
	SaveFn                func(ctx context.Context, f *domain.Form) error
	ListFn                func(ctx context.Context, fl domain.Filter) ([]domain.Form, error)
	MaxSequenceFn         func(ctx context.Context, year int) (int, error)
	CountByMinistryFn     func(ctx context.Context, ministryID uint64) (int64, error)
	CountByLeaderFn       func(ctx context.Context, leaderID uint64) (int64, error)
	CountByStatusFn       func(ctx context.Context, statuses ...domain.Status) (int64, error)
	ApprovedBudgetTotalFn func(ctx context.Context) (float64, error)
}

func (m *Repo) Create(ctx context.Context, f *domain.Form) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, f)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Form, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Form, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Save(ctx context.Context, f *domain.Form) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, f)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, fl domain.Filter) ([]domain.Form, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, fl)
	}
	return nil, nil
}

func (m *Repo) MaxSequence(ctx context.Context, year int) (int, error) {
	if m.MaxSequenceFn != nil {
		return m.MaxSequenceFn(ctx, year)
	}
	return 0, nil
}

func (m *Repo) CountByMinistry(ctx context.Context, ministryID uint64) (int64, error) {
	if m.CountByMinistryFn != nil {
		return m.CountByMinistryFn(ctx, ministryID)
	}
	return 0, nil
}

func (m *Repo) CountByLeader(ctx context.Context, leaderID uint64) (int64, error) {
	if m.CountByLeaderFn != nil {
		return m.CountByLeaderFn(ctx, leaderID)
	}
	return 0, nil
}

func (m *Repo) CountByStatus(ctx context.Context, statuses ...domain.Status) (int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, statuses...)
	}
	return 0, nil
}

func (m *Repo) ApprovedBudgetTotal(ctx context.Context) (float64, error) {
	if m.ApprovedBudgetTotalFn != nil {
		return m.ApprovedBudgetTotalFn(ctx)
	}
	return 0, nil
}
