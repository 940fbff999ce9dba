package models

import "fusion/db"

func Init() {
	db.Instance.AutoMigrate(&User{})
	db.Instance.AutoMigrate(&UserSetting{})
	db.Instance.AutoMigrate(&Feedback{})
	db.Instance.AutoMigrate(&ActivityLog{})
	db.Instance.AutoMigrate(&ImageClassification{})
}
