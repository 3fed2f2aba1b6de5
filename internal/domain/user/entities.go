package user

import "time"

type Role string

const (
	RoleMinistryLeader Role = "ministry_leader"
	RolePillar         Role = "pillar"
	RolePastor         Role = "pastor"
	RoleAdmin          Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMinistryLeader, RolePillar, RolePastor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	FullName  string    `gorm:"size:120;column:full_name" json:"full_name"`
	Email     string    `gorm:"size:120;uniqueIndex:ux_users_email" json:"email"`
	PIN       string    `gorm:"size:6;column:pin" json:"-"`
	Role      Role      `gorm:"size:20" json:"role"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (User) TableName() string { return "users" }

// Actor is the request-scoped identity that permission checks and
// notification derivation run against. MinistryIDs carries the ministries a
// pillar oversees; it is empty for every other role (pastors approve
// globally).
type Actor struct {
	ID          uint64
	Role        Role
	MinistryIDs []uint64
}

func (a Actor) Oversees(ministryID uint64) bool {
	for _, id := range a.MinistryIDs {
		if id == ministryID {
			return true
		}
	}
	return false
}
