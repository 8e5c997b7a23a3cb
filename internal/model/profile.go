package model

import "time"

type Profile struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_username" json:"username"`
	AvatarURL    string    `gorm:"type:varchar(512)" json:"avatar_url"`
	Verified     bool      `gorm:"type:tinyint(1);not null;default:0" json:"verified"`
	TotalUploads int       `gorm:"not null;default:0" json:"total_uploads"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
