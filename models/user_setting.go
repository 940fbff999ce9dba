package models

import (
	"fusion/db"
	"time"
)

// UserSetting holds the per-user notification preferences, one row per user
type UserSetting struct {
	ID             uint64 `gorm:"primaryKey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	UserID         uint64 `gorm:"index:uniq_setting_user,unique;not null"`
	NotifyTTS      bool   `gorm:"not null;default:true"`
	NotifyClassify bool   `gorm:"not null;default:true"`
	NotifyFeedback bool   `gorm:"not null;default:true"`
}

// UserSettingFor returns the user's settings, creating the defaults if the
// row is missing (e.g. accounts that predate the settings table).
func UserSettingFor(userID uint64) (UserSetting, error) {
	setting := UserSetting{}
	result := db.Instance.First(&setting, "user_id = ?", userID)
	if result.Error == nil {
		return setting, nil
	}
	setting = UserSetting{
		UserID:         userID,
		NotifyTTS:      true,
		NotifyClassify: true,
		NotifyFeedback: true,
	}
	return setting, db.Instance.Create(&setting).Error
}

// UserSettingUpdate saves new preferences. Concurrent saves from two
// sessions of the same user are last-write-wins.
func UserSettingUpdate(userID uint64, notifyTTS, notifyClassify, notifyFeedback bool) (UserSetting, error) {
	setting, err := UserSettingFor(userID)
	if err != nil {
		return setting, err
	}
	setting.NotifyTTS = notifyTTS
	setting.NotifyClassify = notifyClassify
	setting.NotifyFeedback = notifyFeedback
	return setting, db.Instance.Save(&setting).Error
}
