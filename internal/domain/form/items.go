package form

import "time"

// Event is a planned activity attached to a form. Rows live and die with
// the editing window of their parent form: the same permission gate that
// protects the form's sections protects its events.
type Event struct {
	ID                uint64     `gorm:"primaryKey;column:id" json:"id"`
	FormID            uint64     `gorm:"index:idx_events_form" json:"form_id"`
	EventDate         *time.Time `json:"event_date"`
	EventName         string     `gorm:"size:200" json:"event_name"`
	EventType         string     `gorm:"size:120" json:"event_type"`
	Purpose           string     `gorm:"type:text" json:"purpose"`
	Description       string     `gorm:"type:text" json:"description"`
	EstimatedExpenses float64    `gorm:"default:0" json:"estimated_expenses"`
	Notes             string     `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Event) TableName() string { return "events" }

// Goal is a measurable objective attached to a form.
type Goal struct {
	ID            uint64     `gorm:"primaryKey;column:id" json:"id"`
	FormID        uint64     `gorm:"index:idx_goals_form" json:"form_id"`
	Goal          string     `gorm:"type:text" json:"goal"`
	MeasureTarget string     `gorm:"type:text" json:"measure_target"`
	DueDate       *time.Time `json:"due_date"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Goal) TableName() string { return "goals" }
