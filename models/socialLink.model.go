package models

import "gorm.io/gorm"

// SocialLink stores one social-media link per platform per user. Platform
// is normalized to capitalized form ("facebook" -> "Facebook") at write time.
type SocialLink struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"uniqueIndex:idx_user_platform;not null"`
	Platform string `json:"platform" gorm:"uniqueIndex:idx_user_platform;not null"`
	Name     string `json:"name" gorm:"default:''"`
	URL      string `json:"url" gorm:"default:''"`
	User     User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
