package ministry

import "time"

// Ministry is reference data owned by admins. PillarID links the pillar user
// responsible for first-stage approval of the ministry's forms.
type Ministry struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"size:120;uniqueIndex:ux_ministries_name" json:"name"`
	PillarID    *uint64   `gorm:"index:idx_ministries_pillar" json:"pillar_id"`
	Description string    `gorm:"type:text" json:"description"`
	Active      bool      `gorm:"default:true" json:"active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Ministry) TableName() string { return "ministries" }

type EventType struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"size:120;uniqueIndex:ux_event_types_name" json:"name"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (EventType) TableName() string { return "event_types" }
