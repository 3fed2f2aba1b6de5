package formmock

import (
	"context"

	domain "ministry-budget-api/internal/domain/form"

	"gorm.io/gorm"
)

var _ domain.EventRepository = (*EventRepo)(nil)

type EventRepo struct {
	CreateFn     func(ctx context.Context, e *domain.Event) error
	GetByFormFn  func(ctx context.Context, formID, eventID uint64) (*domain.Event, error)
	ListByFormFn func(ctx context.Context, formID uint64) ([]domain.Event, error)
	SaveFn       func(ctx context.Context, e *domain.Event) error
	DeleteFn     func(ctx context.Context, formID, eventID uint64) error
}

func (m *EventRepo) Create(ctx context.Context, e *domain.Event) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *EventRepo) GetByForm(ctx context.Context, formID, eventID uint64) (*domain.Event, error) {
	if m.GetByFormFn != nil {
		return m.GetByFormFn(ctx, formID, eventID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *EventRepo) ListByForm(ctx context.Context, formID uint64) ([]domain.Event, error) {
	if m.ListByFormFn != nil {
		return m.ListByFormFn(ctx, formID)
	}
	return nil, nil
}

func (m *EventRepo) Save(ctx context.Context, e *domain.Event) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *EventRepo) Delete(ctx context.Context, formID, eventID uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, formID, eventID)
	}
	return nil
}

var _ domain.GoalRepository = (*GoalRepo)(nil)

type GoalRepo struct {
	CreateFn     func(ctx context.Context, g *domain.Goal) error
	GetByFormFn  func(ctx context.Context, formID, goalID uint64) (*domain.Goal, error)
	ListByFormFn func(ctx context.Context, formID uint64) ([]domain.Goal, error)
	SaveFn       func(ctx context.Context, g *domain.Goal) error
	DeleteFn     func(ctx context.Context, formID, goalID uint64) error
}

func (m *GoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, g)
	}
	return nil
}

func (m *GoalRepo) GetByForm(ctx context.Context, formID, goalID uint64) (*domain.Goal, error) {
	if m.GetByFormFn != nil {
		return m.GetByFormFn(ctx, formID, goalID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *GoalRepo) ListByForm(ctx context.Context, formID uint64) ([]domain.Goal, error) {
	if m.ListByFormFn != nil {
		return m.ListByFormFn(ctx, formID)
	}
	return nil, nil
}

func (m *GoalRepo) Save(ctx context.Context, g *domain.Goal) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, g)
	}
	return nil
}

func (m *GoalRepo) Delete(ctx context.Context, formID, goalID uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, formID, goalID)
	}
	return nil
}
