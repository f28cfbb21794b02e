package models

import "gorm.io/gorm"

// Weekday names accepted for a course's weekly slot. A course has at most
// one slot; an empty DayOfWeek means the course is unscheduled.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type Course struct {
	gorm.Model
	Code        string `json:"code" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Subject     string `json:"subject" gorm:"default:''"`
	Description string `json:"description" gorm:"type:text"`
	DayOfWeek   string `json:"day_of_week" gorm:"default:''"` // Monday..Sunday
	TimeOfDay   string `json:"time_of_day" gorm:"default:''"` // 24h "15:04"
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}

// WeekdayIndex maps a weekday name to its index with Monday=0 .. Sunday=6.
// Returns -1 for anything that is not a weekday name.
func WeekdayIndex(day string) int {
	for i, name := range Weekdays {
		if name == day {
			return i
		}
	}
	return -1
}
