package models

import (
	"fusion/db"
	"time"
)

type ImageClassification struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UserID    uint64 `gorm:"index;not null"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ImagePath string `gorm:"type:varchar(255);not null"`
	Result    string `gorm:"type:text;not null"`
}

func ImageClassificationAdd(userID uint64, imagePath, result string) (ImageClassification, error) {
	entry := ImageClassification{UserID: userID, ImagePath: imagePath, Result: result}
	return entry, db.Instance.Create(&entry).Error
}

func ImageClassificationAll() ([]ImageClassification, error) {
	entries := []ImageClassification{}
	err := db.Instance.Preload("User").Order("created_at DESC, id DESC").Find(&entries).Error
	return entries, err
}
