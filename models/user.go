package models

import (
	"errors"
	"fusion/db"
	"fusion/utils"
	"time"
)

const saltSize = 60

var (
	ErrUsernameTaken = errors.New("username already registered")
	ErrEmailTaken    = errors.New("email already registered")
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string  `gorm:"type:varchar(50);index:uniq_username,unique;not null"`
	Name      string  `gorm:"type:varchar(100);not null"`
	Email     *string `gorm:"type:varchar(100);index:uniq_email,unique"`
	Password  string  `gorm:"type:varchar(128)"`
	PassSalt  string  `gorm:"type:varchar(200)"`
	IsAdmin   bool    `gorm:"not null;default:false"`

	Feedbacks       []Feedback            `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ActivityLogs    []ActivityLog         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Classifications []ImageClassification `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Settings        *UserSetting          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// UserCreate registers a new user and their default notification settings
func UserCreate(username, name, email, plainTextPassword string) (u User, err error) {
	var count int64
	if err = db.Instance.Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return
	}
	if count > 0 {
		return User{}, ErrUsernameTaken
	}
	if email != "" {
		if err = db.Instance.Model(&User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return
		}
		if count > 0 {
			return User{}, ErrEmailTaken
		}
		u.Email = &email
	}
	u.Username = username
	u.Name = name
	u.SetPassword(plainTextPassword)
	if err = db.Instance.Create(&u).Error; err != nil {
		return
	}
	u.Settings = &UserSetting{
		UserID:         u.ID,
		NotifyTTS:      true,
		NotifyClassify: true,
		NotifyFeedback: true,
	}
	err = db.Instance.Create(u.Settings).Error
	return
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
}

// UserLogin verifies the credentials against the stored salted hash
func UserLogin(username, plainTextPassword string) (u User, success bool) {
	result := db.Instance.Preload("Settings").First(&u, "username = ?", username)
	if result.Error != nil {
		return User{}, false
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, false
	}
	return u, true
}

// EmailTakenByOther reports whether the email belongs to an account other
// than userID
func EmailTakenByOther(email string, userID uint64) (bool, error) {
	var count int64
	err := db.Instance.Model(&User{}).
		Where("email = ? AND id <> ?", email, userID).
		Count(&count).Error
	return count > 0, err
}

// UserExists reports whether the given user ID has a row in the users table
func UserExists(userID uint64) (bool, error) {
	var count int64
	err := db.Instance.Model(&User{}).Where("id = ?", userID).Count(&count).Error
	return count > 0, err
}
