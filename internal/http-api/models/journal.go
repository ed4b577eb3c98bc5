package models

import "time"

// Journal is a single dated journal entry. Entries carry no owner column:
// every authenticated user can read and mutate every entry.
type Journal struct {
	ID           uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string     `json:"title" gorm:"index;not null"`
	Content      string     `json:"content" gorm:"not null"`
	Category     string     `json:"category"` // advisory, not validated against the category list
	DateCreated  time.Time  `json:"date_created" gorm:"index;not null"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	DateOfUpdate time.Time  `json:"date_of_update" gorm:"not null"` // invariant: never before DateCreated
	Archive      bool       `json:"archive" gorm:"not null;default:false"`
}

func (Journal) TableName() string {
	return "journals"
}
