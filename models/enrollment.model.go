package models

import "gorm.io/gorm"

// Enrollment joins a user to a course. The (user, course) pair is unique:
// a user cannot enroll twice in the same course. Rows are created on enroll
// and hard-deleted on unenroll.
type Enrollment struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID uint   `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	User     User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course   Course `json:"course" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
