package userValidator

import (
	"strconv"
	"strings"

	"github.com/Nanokwok/StudyBuddy/middleware"

	"github.com/gofiber/fiber/v2"
)

// UserID validates the :id path parameter
func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		c.Locals("targetUserID", uint(id))
		return c.Next()
	}
}

// UpdateProfileRequest is the validated profile update payload
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
}

// UpdateProfile validates the profile update payload
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.FirstName == nil && reqData.LastName == nil && reqData.Bio == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"fields": "Nothing to update!",
			})
		}

		if reqData.Bio != nil && len(*reqData.Bio) > 500 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"bio": "Bio must be 500 characters or fewer!",
			})
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
