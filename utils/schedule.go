package utils

import (
	"sort"
	"time"

	"github.com/Nanokwok/StudyBuddy/models"
)

// UpcomingSession is one projected occurrence of a course's weekly slot.
type UpcomingSession struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"` // "Jan 2, 2006"
	Time  string `json:"time"` // "3:04 PM"
}

// weekdayIndex maps time.Weekday (Sunday=0) onto Monday=0 .. Sunday=6.
func weekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// NextOccurrence returns the next date on or after today that falls on the
// target weekday (Monday=0 .. Sunday=6). A course meeting on today's weekday
// projects to today itself, regardless of whether its time-of-day has
// already passed.
func NextOccurrence(today time.Time, targetDay int) time.Time {
	delta := (targetDay - weekdayIndex(today.Weekday()) + 7) % 7
	return today.AddDate(0, 0, delta)
}

// FormatTimeOfDay renders a 24h "15:04" slot on a 12-hour clock with AM/PM.
// Values that do not parse are returned unchanged.
func FormatTimeOfDay(timeOfDay string) string {
	t, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return timeOfDay
	}
	return t.Format("3:04 PM")
}

// ProjectUpcomingSessions maps each scheduled course onto its next occurrence
// relative to today and returns at most limit records, sorted ascending by
// projected date with time-of-day then course id as tie-breakers.
func ProjectUpcomingSessions(courses []models.Course, today time.Time, limit int) []UpcomingSession {
	type projected struct {
		course models.Course
		date   time.Time
	}

	var upcoming []projected
	for _, course := range courses {
		day := models.WeekdayIndex(course.DayOfWeek)
		if day < 0 {
			continue // unscheduled courses have no projection
		}
		upcoming = append(upcoming, projected{course: course, date: NextOccurrence(today, day)})
	}

	sort.Slice(upcoming, func(i, j int) bool {
		if !upcoming[i].date.Equal(upcoming[j].date) {
			return upcoming[i].date.Before(upcoming[j].date)
		}
		// 24h "HH:MM" strings order chronologically
		if upcoming[i].course.TimeOfDay != upcoming[j].course.TimeOfDay {
			return upcoming[i].course.TimeOfDay < upcoming[j].course.TimeOfDay
		}
		return upcoming[i].course.ID < upcoming[j].course.ID
	})

	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}

	sessions := make([]UpcomingSession, 0, len(upcoming))
	for _, p := range upcoming {
		sessions = append(sessions, UpcomingSession{
			ID:    p.course.ID,
			Title: p.course.Title,
			Date:  p.date.Format("Jan 2, 2006"),
			Time:  FormatTimeOfDay(p.course.TimeOfDay),
		})
	}
	return sessions
}
