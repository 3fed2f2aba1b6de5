package postgres

import (
	"context"

	domainAudit "ministry-budget-api/internal/domain/audit"

	"gorm.io/gorm"
)

// AuditRepository appends to the audit_logs table. There are deliberately
// no update or delete methods.
type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Append(ctx context.Context, e *domainAudit.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// ListByForm returns the trail for one form, oldest first.
func (r *AuditRepository) ListByForm(ctx context.Context, formID uint64) ([]domainAudit.Entry, error) {
	var out []domainAudit.Entry
	err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("created_at, id").
		Find(&out).Error
	return out, err
}
