package utils

import (
	"testing"
	"time"

	"github.com/Nanokwok/StudyBuddy/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func gormModel(id uint) gorm.Model {
	return gorm.Model{ID: id}
}

// 2025-06-04 is a Wednesday
var wednesday = time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

func TestNextOccurrence(t *testing.T) {
	// A course meeting today projects to today, even though its time-of-day
	// may already have passed
	wed := models.WeekdayIndex("Wednesday")
	assert.Equal(t, wednesday, NextOccurrence(wednesday, wed))

	// Week wraparound: Monday from a Wednesday is 5 days out
	mon := models.WeekdayIndex("Monday")
	assert.Equal(t, wednesday.AddDate(0, 0, 5), NextOccurrence(wednesday, mon))

	// Next day
	thu := models.WeekdayIndex("Thursday")
	assert.Equal(t, wednesday.AddDate(0, 0, 1), NextOccurrence(wednesday, thu))

	// Sunday from a Wednesday
	sun := models.WeekdayIndex("Sunday")
	assert.Equal(t, wednesday.AddDate(0, 0, 4), NextOccurrence(wednesday, sun))
}

func TestFormatTimeOfDay(t *testing.T) {
	assert.Equal(t, "9:30 AM", FormatTimeOfDay("09:30"))
	assert.Equal(t, "1:05 PM", FormatTimeOfDay("13:05"))
	assert.Equal(t, "12:00 AM", FormatTimeOfDay("00:00"))
	// Unparseable values pass through unchanged
	assert.Equal(t, "whenever", FormatTimeOfDay("whenever"))
	assert.Equal(t, "", FormatTimeOfDay(""))
}

func TestProjectUpcomingSessionsOrderingAndLimit(t *testing.T) {
	courses := []models.Course{
		{Model: gormModel(1), Title: "Linear Algebra", DayOfWeek: "Monday", TimeOfDay: "10:00"},
		{Model: gormModel(2), Title: "Chemistry", DayOfWeek: "Thursday", TimeOfDay: "14:00"},
		{Model: gormModel(3), Title: "Statistics", DayOfWeek: "Wednesday", TimeOfDay: "09:00"},
		{Model: gormModel(4), Title: "History", DayOfWeek: "Friday", TimeOfDay: "11:00"},
	}

	sessions := ProjectUpcomingSessions(courses, wednesday, 3)

	// Truncated to 3, ascending by projected date: Wed (today), Thu, Fri.
	// Monday wraps to next week and falls off the end.
	assert.Len(t, sessions, 3)
	assert.Equal(t, "Statistics", sessions[0].Title)
	assert.Equal(t, "Jun 4, 2025", sessions[0].Date)
	assert.Equal(t, "9:00 AM", sessions[0].Time)
	assert.Equal(t, "Chemistry", sessions[1].Title)
	assert.Equal(t, "Jun 5, 2025", sessions[1].Date)
	assert.Equal(t, "History", sessions[2].Title)
	assert.Equal(t, "Jun 6, 2025", sessions[2].Date)
}

func TestProjectUpcomingSessionsSameDayTieBreak(t *testing.T) {
	courses := []models.Course{
		{Model: gormModel(9), Title: "Later", DayOfWeek: "Wednesday", TimeOfDay: "15:00"},
		{Model: gormModel(5), Title: "Earlier", DayOfWeek: "Wednesday", TimeOfDay: "08:00"},
		{Model: gormModel(7), Title: "SameTimeHighID", DayOfWeek: "Wednesday", TimeOfDay: "08:00"},
	}

	sessions := ProjectUpcomingSessions(courses, wednesday, 3)

	// Same-day courses order by time-of-day, then course id
	assert.Equal(t, "Earlier", sessions[0].Title)
	assert.Equal(t, uint(5), sessions[0].ID)
	assert.Equal(t, "SameTimeHighID", sessions[1].Title)
	assert.Equal(t, "Later", sessions[2].Title)
}

func TestProjectUpcomingSessionsSkipsUnscheduled(t *testing.T) {
	courses := []models.Course{
		{Model: gormModel(1), Title: "Scheduled", DayOfWeek: "Friday", TimeOfDay: "10:00"},
		{Model: gormModel(2), Title: "Unscheduled"},
	}

	sessions := ProjectUpcomingSessions(courses, wednesday, 3)

	// Output length is min(limit, scheduled course count)
	assert.Len(t, sessions, 1)
	assert.Equal(t, "Scheduled", sessions[0].Title)
}

func TestProjectUpcomingSessionsEmpty(t *testing.T) {
	assert.Empty(t, ProjectUpcomingSessions(nil, wednesday, 3))
}
