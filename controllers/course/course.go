package courseController

import (
	"log"
	"strings"

	"github.com/Nanokwok/StudyBuddy/config"
	"github.com/Nanokwok/StudyBuddy/database"
	"github.com/Nanokwok/StudyBuddy/middleware"
	"github.com/Nanokwok/StudyBuddy/models"
	"github.com/Nanokwok/StudyBuddy/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists courses, optionally filtered by a search term matching
// code, title or subject.
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_deleted = ?", false)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(code) LIKE ? OR LOWER(title) LIKE ? OR LOWER(subject) LIKE ?", pattern, pattern, pattern)
	}

	var courses []models.Course
	if err := db.Order("code asc").Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns one course with its enrolled-user count
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrolledCount int64
	if err := db.Model(&models.Enrollment{}).Where("course_id = ?", courseID).Count(&enrolledCount).Error; err != nil {
		log.Printf("Error counting enrollments for course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":              course,
		"enrolled_user_count": enrolledCount,
	})
}

// GetEnrolledUsers lists the users enrolled in a course
func GetEnrolledUsers(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&models.Course{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollments []models.Enrollment
	if err := db.Where("course_id = ?", courseID).Preload("User").Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrolled users for course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrolled users!", nil)
	}

	resolver := utils.NewMediaResolver(config.AppConfig.MediaBaseURL)
	users := make([]map[string]interface{}, 0, len(enrollments))
	for _, e := range enrollments {
		users = append(users, utils.BasicUser(e.User, resolver))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled users fetched successfully!", users)
}
