package models

import (
	"errors"
	"fusion/db"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// ActivityLog is one append-only audit entry. Entries are never updated
// or deleted; they only accumulate and are read newest-first.
type ActivityLog struct {
	ID        uint64    `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index:user_log_created,priority:2"`
	UserID    uint64    `gorm:"index:user_log_created,priority:1;not null"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Activity  string    `gorm:"type:text;not null"`
}

// ActivityLogAdd appends one entry for an existing user. A userID with no
// user row yields ErrUserNotFound and no entry is created.
func ActivityLogAdd(userID uint64, activity string) (ActivityLog, error) {
	exists, err := UserExists(userID)
	if err != nil {
		return ActivityLog{}, err
	}
	if !exists {
		return ActivityLog{}, ErrUserNotFound
	}
	entry := ActivityLog{UserID: userID, Activity: activity}
	return entry, db.Instance.Create(&entry).Error
}

// ActivityLogForUser returns the user's entries, most recent first.
// The id column breaks same-timestamp ties in insertion order.
func ActivityLogForUser(userID uint64) ([]ActivityLog, error) {
	entries := []ActivityLog{}
	err := db.Instance.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&entries).Error
	return entries, err
}
