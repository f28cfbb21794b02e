package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Nanokwok/StudyBuddy/config"
	"github.com/Nanokwok/StudyBuddy/database"
	"github.com/Nanokwok/StudyBuddy/models"
)

// Imports the course catalog from courses.csv. Expected headers:
// code,title,subject,description,day_of_week,time_of_day
func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open("courses.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Create CSV reader
	reader := csv.NewReader(file)

	// Read all records
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Map header indices
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	updated := 0
	skipped := 0

	db := database.Database.Db

	for i, row := range records[1:] {
		course, skipReason := courseFromRow(row, headerIndex)
		if skipReason != "" {
			log.Printf("Row %d skipped: %s", i+2, skipReason)
			skipped++
			continue
		}

		// Upsert by course code
		var existing models.Course
		if err := db.Where("code = ?", course.Code).First(&existing).Error; err == nil {
			if err := db.Model(&existing).Updates(map[string]interface{}{
				"title":       course.Title,
				"subject":     course.Subject,
				"description": course.Description,
				"day_of_week": course.DayOfWeek,
				"time_of_day": course.TimeOfDay,
			}).Error; err != nil {
				log.Printf("Row %d update failed: %v", i+2, err)
				skipped++
				continue
			}
			updated++
		} else {
			if err := db.Create(&course).Error; err != nil {
				log.Printf("Row %d insert failed: %v", i+2, err)
				skipped++
				continue
			}
			inserted++
		}
	}

	log.Printf("Import complete: %d inserted, %d updated, %d skipped", inserted, updated, skipped)
}

// courseFromRow converts one CSV row into a Course. The second return value
// names the reason the row cannot be imported, or is empty when it can.
// A row needs a code and a title; when a weekly slot is present its day must
// be a weekday name and its time must parse as 24h "15:04".
func courseFromRow(row []string, headerIndex map[string]int) (models.Course, string) {
	code := getField(row, headerIndex, "code")
	title := getField(row, headerIndex, "title")
	if code == "" || title == "" {
		return models.Course{}, "missing code or title"
	}

	dayOfWeek := getField(row, headerIndex, "day_of_week")
	if dayOfWeek != "" && models.WeekdayIndex(dayOfWeek) < 0 {
		return models.Course{}, fmt.Sprintf("invalid day_of_week %q", dayOfWeek)
	}

	timeOfDay := getField(row, headerIndex, "time_of_day")
	if timeOfDay != "" {
		if _, err := time.Parse("15:04", timeOfDay); err != nil {
			return models.Course{}, fmt.Sprintf("invalid time_of_day %q", timeOfDay)
		}
	}

	return models.Course{
		Code:        code,
		Title:       title,
		Subject:     getField(row, headerIndex, "subject"),
		Description: getField(row, headerIndex, "description"),
		DayOfWeek:   dayOfWeek,
		TimeOfDay:   timeOfDay,
	}, ""
}

// getField safely extracts a trimmed field from a CSV row
func getField(row []string, headerIndex map[string]int, name string) string {
	idx, ok := headerIndex[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
