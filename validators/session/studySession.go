package sessionValidator

import (
	"strconv"
	"strings"
	"time"

	"github.com/Nanokwok/StudyBuddy/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateSessionRequest is the validated study-session payload
type CreateSessionRequest struct {
	CourseID    uint      `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location"`
	IsVirtual   bool      `json:"is_virtual"`
	MeetingLink string    `json:"meeting_link"`
}

// CreateSession validates the study-session creation payload
func CreateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSessionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.StartTime.IsZero() || reqData.EndTime.IsZero() {
			errors["time"] = "Start and end time are required!"
		} else if !reqData.EndTime.After(reqData.StartTime) {
			errors["time"] = "End time must be after start time!"
		}
		if reqData.IsVirtual && strings.TrimSpace(reqData.MeetingLink) == "" {
			errors["meeting_link"] = "Meeting link is required for virtual sessions!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSession", reqData)
		return c.Next()
	}
}

// SessionID validates the :id path parameter
func SessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Session ID!", nil)
		}

		c.Locals("sessionID", uint(id))
		return c.Next()
	}
}
