package models

import (
	"fusion/db"
	"time"
)

type Feedback struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UserID    uint64 `gorm:"index;not null"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Feedback  string `gorm:"type:text;not null"`
}

func FeedbackAdd(userID uint64, feedback string) (Feedback, error) {
	entry := Feedback{UserID: userID, Feedback: feedback}
	return entry, db.Instance.Create(&entry).Error
}

// FeedbackAll returns every feedback entry, newest first, with the
// submitting user preloaded for the admin view.
func FeedbackAll() ([]Feedback, error) {
	entries := []Feedback{}
	err := db.Instance.Preload("User").Order("created_at DESC, id DESC").Find(&entries).Error
	return entries, err
}
