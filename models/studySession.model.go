package models

import (
	"time"

	"gorm.io/gorm"
)

// StudySession is a one-off study event organized around a course.
type StudySession struct {
	gorm.Model
	CreatorID   uint      `json:"creator_id" gorm:"index;not null"`
	CourseID    uint      `json:"course_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location" gorm:"default:''"`
	IsVirtual   bool      `json:"is_virtual" gorm:"default:false"`
	MeetingLink string    `json:"meeting_link" gorm:"default:''"`
	Creator     User      `json:"creator" gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE"`
	Course      Course    `json:"course" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// SessionParticipant joins a user to a study session; one row per user per session.
type SessionParticipant struct {
	gorm.Model
	SessionID uint         `json:"session_id" gorm:"uniqueIndex:idx_session_user;not null"`
	UserID    uint         `json:"user_id" gorm:"uniqueIndex:idx_session_user;not null"`
	Session   StudySession `json:"-" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	User      User         `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
