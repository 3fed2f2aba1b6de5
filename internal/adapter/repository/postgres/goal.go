package postgres

import (
	"context"

	domainForm "ministry-budget-api/internal/domain/form"

	"gorm.io/gorm"
)

type GoalRepository struct{ db *gorm.DB }

func NewGoalRepository(db *gorm.DB) *GoalRepository { return &GoalRepository{db: db} }

func (r *GoalRepository) Create(ctx context.Context, g *domainForm.Goal) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GoalRepository) Save(ctx context.Context, g *domainForm.Goal) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *GoalRepository) GetByForm(ctx context.Context, formID, goalID uint64) (*domainForm.Goal, error) {
	var out domainForm.Goal
	res := r.db.WithContext(ctx).
		Where("id = ? AND form_id = ?", goalID, formID).
		First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *GoalRepository) ListByForm(ctx context.Context, formID uint64) ([]domainForm.Goal, error) {
	var out []domainForm.Goal
	err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("created_at").
		Find(&out).Error
	return out, err
}

func (r *GoalRepository) Delete(ctx context.Context, formID, goalID uint64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND form_id = ?", goalID, formID).
		Delete(&domainForm.Goal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
