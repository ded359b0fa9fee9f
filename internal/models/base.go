package models

import "time"

// Base contains common columns for all tables. IDs are small integers
// assigned by the database; element identity relies on them staying stable
// across merges.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
