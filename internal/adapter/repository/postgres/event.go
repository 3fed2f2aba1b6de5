package postgres

import (
	"context"

	domainForm "ministry-budget-api/internal/domain/form"

	"gorm.io/gorm"
)

type EventRepository struct{ db *gorm.DB }

func NewEventRepository(db *gorm.DB) *EventRepository { return &EventRepository{db: db} }

func (r *EventRepository) Create(ctx context.Context, e *domainForm.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EventRepository) Save(ctx context.Context, e *domainForm.Event) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EventRepository) GetByForm(ctx context.Context, formID, eventID uint64) (*domainForm.Event, error) {
	var out domainForm.Event
	res := r.db.WithContext(ctx).
		Where("id = ? AND form_id = ?", eventID, formID).
		First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *EventRepository) ListByForm(ctx context.Context, formID uint64) ([]domainForm.Event, error) {
	var out []domainForm.Event
	err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("event_date").
		Find(&out).Error
	return out, err
}

func (r *EventRepository) Delete(ctx context.Context, formID, eventID uint64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND form_id = ?", eventID, formID).
		Delete(&domainForm.Event{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
