package postgres

import (
	"context"
	"errors"

	domainForm "ministry-budget-api/internal/domain/form"
	"ministry-budget-api/pkg/formnum"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FormRepository struct{ db *gorm.DB }

func NewFormRepository(db *gorm.DB) *FormRepository { return &FormRepository{db: db} }

func (r *FormRepository) Create(ctx context.Context, f *domainForm.Form) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FormRepository) Save(ctx context.Context, f *domainForm.Form) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *FormRepository) GetByID(ctx context.Context, id uint64) (*domainForm.Form, error) {
	var out domainForm.Form
	res := r.db.WithContext(ctx).First(&out, id)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

// GetByIDForUpdate takes a row lock; only meaningful inside a transaction.
func (r *FormRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*domainForm.Form, error) {
	var out domainForm.Form
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *FormRepository) List(ctx context.Context, fl domainForm.Filter) ([]domainForm.Form, error) {
	q := r.db.WithContext(ctx).Model(&domainForm.Form{})
	if fl.MinistryLeaderID != 0 {
		q = q.Where("ministry_leader_id = ?", fl.MinistryLeaderID)
	}
	if len(fl.MinistryIDs) > 0 {
		q = q.Where("ministry_id IN ?", fl.MinistryIDs)
	}
	if len(fl.Statuses) > 0 {
		q = q.Where("status IN ?", fl.Statuses)
	}
	var out []domainForm.Form
	if err := q.Order("updated_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// MaxSequence reads the highest assigned sequence for a year from the form
// numbers themselves. Runs inside the creation transaction so the read and
// the subsequent insert are serialized; the unique index on form_number
// backstops any race. Ordering by length first keeps the comparison numeric
// once sequences grow past four digits.
func (r *FormRepository) MaxSequence(ctx context.Context, year int) (int, error) {
	var last string
	res := r.db.WithContext(ctx).
		Model(&domainForm.Form{}).
		Select("form_number").
		Where("form_number LIKE ?", formnum.Prefix(year)+"%").
		Order("LENGTH(form_number) DESC, form_number DESC").
		Limit(1).
		Scan(&last)
	if res.Error != nil {
		return 0, res.Error
	}
	if last == "" {
		return 0, nil
	}
	_, seq, err := formnum.Parse(last)
	if err != nil {
		return 0, err
	}
	return seq, nil
}

func (r *FormRepository) CountByMinistry(ctx context.Context, ministryID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domainForm.Form{}).
		Where("ministry_id = ?", ministryID).Count(&n).Error
	return n, err
}

func (r *FormRepository) CountByLeader(ctx context.Context, leaderID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domainForm.Form{}).
		Where("ministry_leader_id = ?", leaderID).Count(&n).Error
	return n, err
}

func (r *FormRepository) CountByStatus(ctx context.Context, statuses ...domainForm.Status) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domainForm.Form{})
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

// ApprovedBudgetTotal relies on Postgres JSON operators; there is no
// portable equivalent, which is fine since production runs on Postgres.
func (r *FormRepository) ApprovedBudgetTotal(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&domainForm.Form{}).
		Select("COALESCE(SUM((sections->>'total_budget')::numeric), 0)").
		Where("status = ? AND sections->>'total_budget' IS NOT NULL", domainForm.StatusApproved).
		Scan(&total).Error
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	return total, err
}
