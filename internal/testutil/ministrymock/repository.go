package ministrymock

import (
	"context"

	domain "ministry-budget-api/internal/domain/ministry"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateFn       func(ctx context.Context, m *domain.Ministry) error
	GetByIDFn      func(ctx context.Context, id uint64) (*domain.Ministry, error)
	ListFn         func(ctx context.Context) ([]domain.Ministry, error)
	ListActiveFn   func(ctx context.Context) ([]domain.Ministry, error)
	ListByPillarFn func(ctx context.Context, pillarID uint64) ([]domain.Ministry, error)
	SaveFn         func(ctx context.Context, m *domain.Ministry) error
	DeleteFn       func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, mi *domain.Ministry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, mi)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Ministry, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Ministry, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Ministry, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByPillar(ctx context.Context, pillarID uint64) ([]domain.Ministry, error) {
	if m.ListByPillarFn != nil {
		return m.ListByPillarFn(ctx, pillarID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, mi *domain.Ministry) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, mi)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

var _ domain.EventTypeRepository = (*EventTypeRepo)(nil)

type EventTypeRepo struct {
	CreateFn     func(ctx context.Context, et *domain.EventType) error
	GetByIDFn    func(ctx context.Context, id uint64) (*domain.EventType, error)
	ListFn       func(ctx context.Context) ([]domain.EventType, error)
	ListActiveFn func(ctx context.Context) ([]domain.EventType, error)
	SaveFn       func(ctx context.Context, et *domain.EventType) error
	DeleteFn     func(ctx context.Context, id uint64) error
}

func (m *EventTypeRepo) Create(ctx context.Context, et *domain.EventType) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, et)
	}
	return nil
}

func (m *EventTypeRepo) GetByID(ctx context.Context, id uint64) (*domain.EventType, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *EventTypeRepo) List(ctx context.Context) ([]domain.EventType, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *EventTypeRepo) ListActive(ctx context.Context) ([]domain.EventType, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}

func (m *EventTypeRepo) Save(ctx context.Context, et *domain.EventType) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, et)
	}
	return nil
}

func (m *EventTypeRepo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
