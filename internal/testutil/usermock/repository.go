package usermock

import (
	"context"

	domain "ministry-budget-api/internal/domain/user"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateFn      func(ctx context.Context, u *domain.User) error
	GetByIDFn     func(ctx context.Context, id uint64) (*domain.User, error)
	ListFn        func(ctx context.Context) ([]domain.User, error)
	ListPillarsFn func(ctx context.Context) ([]domain.User, error)
	SaveFn        func(ctx context.Context, u *domain.User) error
	DeleteFn      func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListPillars(ctx context.Context) ([]domain.User, error) {
	if m.ListPillarsFn != nil {
		return m.ListPillarsFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
