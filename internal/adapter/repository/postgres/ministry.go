package postgres

import (
	"context"

	domainMinistry "ministry-budget-api/internal/domain/ministry"

	"gorm.io/gorm"
)

type MinistryRepository struct{ db *gorm.DB }

func NewMinistryRepository(db *gorm.DB) *MinistryRepository { return &MinistryRepository{db: db} }

func (r *MinistryRepository) Create(ctx context.Context, m *domainMinistry.Ministry) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MinistryRepository) Save(ctx context.Context, m *domainMinistry.Ministry) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MinistryRepository) GetByID(ctx context.Context, id uint64) (*domainMinistry.Ministry, error) {
	var out domainMinistry.Ministry
	res := r.db.WithContext(ctx).First(&out, id)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *MinistryRepository) List(ctx context.Context) ([]domainMinistry.Ministry, error) {
	var out []domainMinistry.Ministry
	err := r.db.WithContext(ctx).Order("name").Find(&out).Error
	return out, err
}

func (r *MinistryRepository) ListActive(ctx context.Context) ([]domainMinistry.Ministry, error) {
	var out []domainMinistry.Ministry
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("name").Find(&out).Error
	return out, err
}

func (r *MinistryRepository) ListByPillar(ctx context.Context, pillarID uint64) ([]domainMinistry.Ministry, error) {
	var out []domainMinistry.Ministry
	err := r.db.WithContext(ctx).Where("pillar_id = ?", pillarID).Order("name").Find(&out).Error
	return out, err
}

func (r *MinistryRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&domainMinistry.Ministry{}, id).Error
}

type EventTypeRepository struct{ db *gorm.DB }

func NewEventTypeRepository(db *gorm.DB) *EventTypeRepository { return &EventTypeRepository{db: db} }

func (r *EventTypeRepository) Create(ctx context.Context, et *domainMinistry.EventType) error {
	return r.db.WithContext(ctx).Create(et).Error
}

func (r *EventTypeRepository) Save(ctx context.Context, et *domainMinistry.EventType) error {
	return r.db.WithContext(ctx).Save(et).Error
}

func (r *EventTypeRepository) GetByID(ctx context.Context, id uint64) (*domainMinistry.EventType, error) {
	var out domainMinistry.EventType
	res := r.db.WithContext(ctx).First(&out, id)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *EventTypeRepository) List(ctx context.Context) ([]domainMinistry.EventType, error) {
	var out []domainMinistry.EventType
	err := r.db.WithContext(ctx).Order("name").Find(&out).Error
	return out, err
}

func (r *EventTypeRepository) ListActive(ctx context.Context) ([]domainMinistry.EventType, error) {
	var out []domainMinistry.EventType
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("name").Find(&out).Error
	return out, err
}

func (r *EventTypeRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&domainMinistry.EventType{}, id).Error
}
