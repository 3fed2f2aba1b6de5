package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint64) (*User, error)
	List(ctx context.Context) ([]User, error)
	// ListPillars returns active users with the pillar role, for dropdowns.
	ListPillars(ctx context.Context) ([]User, error)
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint64) error
}
