package courseValidator

import (
	"strconv"
	"strings"

	"github.com/Nanokwok/StudyBuddy/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseID validates the :id path parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", uint(id))
		return c.Next()
	}
}

// EnrollRequest validates enroll/unenroll payloads carrying a course id
func EnrollRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID *uint `json:"course_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == nil || *reqData.CourseID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"course_id": "Course ID is required!",
			})
		}

		c.Locals("courseID", *reqData.CourseID)
		return c.Next()
	}
}
