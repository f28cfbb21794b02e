package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username       string    `json:"username" gorm:"uniqueIndex;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	Password       string    `json:"-" gorm:"not null"`
	FirstName      string    `json:"first_name" gorm:"default:''"`
	LastName       string    `json:"last_name" gorm:"default:''"`
	Bio            string    `json:"bio" gorm:"default:''"`
	ProfilePicture string    `json:"profile_picture" gorm:"default:''"` // stored path, resolved by utils.MediaResolver
	LastLogin      time.Time `json:"last_login" gorm:"default:NULL"`
	IsDeleted      bool      `json:"-" gorm:"default:false"`
}

// DisplayName returns "First Last" trimmed, falling back to the username
// when neither name part is set.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}
