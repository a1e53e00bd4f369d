package models

import "time"

// Entry is the part every per-user log row has in common.
type Entry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *Entry) OwnerID() uint { return e.UserID }

// Stamp assigns the identity a store gives a freshly inserted row.
func (e *Entry) Stamp(id uint, at time.Time) {
	e.ID = id
	e.CreatedAt = at
}
