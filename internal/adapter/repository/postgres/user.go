package postgres

import (
	"context"
	"strings"

	domainUser "ministry-budget-api/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *domainUser.User) error {
	u.Email = strings.ToLower(u.Email)
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Save(ctx context.Context, u *domainUser.User) error {
	u.Email = strings.ToLower(u.Email)
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*domainUser.User, error) {
	var out domainUser.User
	res := r.db.WithContext(ctx).First(&out, id)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domainUser.User, error) {
	var out []domainUser.User
	err := r.db.WithContext(ctx).Order("full_name").Find(&out).Error
	return out, err
}

func (r *UserRepository) ListPillars(ctx context.Context) ([]domainUser.User, error) {
	var out []domainUser.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND active = ?", domainUser.RolePillar, true).
		Order("full_name").
		Find(&out).Error
	return out, err
}

func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&domainUser.User{}, id).Error
}
