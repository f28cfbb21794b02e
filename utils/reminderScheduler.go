package utils

import (
	"log"
	"strconv"
	"time"

	"github.com/Nanokwok/StudyBuddy/database"
	"github.com/Nanokwok/StudyBuddy/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logReminder logs reminder scheduler events with timestamp
func logReminder(message string) {
	log.Printf("[CLASS-REMINDER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sendTodayReminders emails every enrolled student whose course meets today.
func sendTodayReminders() {
	db := database.Database.Db

	today := now.BeginningOfDay()
	weekday := models.Weekdays[(int(today.Weekday())+6)%7]

	var enrollments []models.Enrollment
	if err := db.Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("courses.day_of_week = ?", weekday).
		Preload("User").
		Preload("Course").
		Find(&enrollments).Error; err != nil {
		logReminder("Error fetching today's enrollments: " + err.Error())
		return
	}

	sent := 0
	for _, enrollment := range enrollments {
		err := SendClassReminderEmail(
			enrollment.User.Email,
			enrollment.User.DisplayName(),
			enrollment.Course.Title,
			FormatTimeOfDay(enrollment.Course.TimeOfDay),
		)
		if err != nil {
			logReminder("Error sending reminder to " + enrollment.User.Email + ": " + err.Error())
			continue
		}
		sent++
	}

	logReminder("Sent " + strconv.Itoa(sent) + " reminders for " + weekday)
}

// StartReminderScheduler runs the daily class-reminder job at 07:00.
func StartReminderScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 7 * * *", sendTodayReminders); err != nil {
		log.Fatalf("Failed to schedule class reminders: %v", err)
	}

	c.Start()
	logReminder("Class reminder scheduler started")
	return c
}
