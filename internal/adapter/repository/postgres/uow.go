package postgres

import (
	"context"

	"ministry-budget-api/internal/domain/form"
	"ministry-budget-api/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Forms:      &FormRepository{db: tx},
		Events:     &EventRepository{db: tx},
		Goals:      &GoalRepository{db: tx},
		Users:      &UserRepository{db: tx},
		Ministries: &MinistryRepository{db: tx},
		EventTypes: &EventTypeRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinFormTx(ctx context.Context, formID uint64, fn func(r uow.Repos, f *form.Form) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the form row up-front so concurrent workflow actions serialize
		f, err := r.Forms.GetByIDForUpdate(ctx, formID)
		if err != nil {
			return err
		}
		return fn(r, f)
	})
}
