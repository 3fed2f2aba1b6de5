package ministry

import "context"

type Repository interface {
	Create(ctx context.Context, m *Ministry) error
	GetByID(ctx context.Context, id uint64) (*Ministry, error)
	List(ctx context.Context) ([]Ministry, error)
	// ListActive returns only active ministries, for dropdowns.
	ListActive(ctx context.Context) ([]Ministry, error)
	// ListByPillar returns the ministries a pillar user oversees.
	ListByPillar(ctx context.Context, pillarID uint64) ([]Ministry, error)
	Save(ctx context.Context, m *Ministry) error
	Delete(ctx context.Context, id uint64) error
}

type EventTypeRepository interface {
	Create(ctx context.Context, et *EventType) error
	GetByID(ctx context.Context, id uint64) (*EventType, error)
	List(ctx context.Context) ([]EventType, error)
	ListActive(ctx context.Context) ([]EventType, error)
	Save(ctx context.Context, et *EventType) error
	Delete(ctx context.Context, id uint64) error
}
