package socialValidator

import (
	"strconv"
	"strings"

	"github.com/Nanokwok/StudyBuddy/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateLinkRequest is the validated social-link payload
type CreateLinkRequest struct {
	Platform string `json:"platform"`
	Name     string `json:"name"`
	URL      string `json:"url"`
}

// CreateLink validates the social-link creation payload
func CreateLink() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLinkRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Platform) == "" {
			errors["platform"] = "Platform is required!"
		}
		if strings.TrimSpace(reqData.Name) == "" && strings.TrimSpace(reqData.URL) == "" {
			errors["name"] = "Either name or url is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLink", reqData)
		return c.Next()
	}
}

// UpdateLinkRequest is the validated social-link update payload
type UpdateLinkRequest struct {
	Name *string `json:"name"`
	URL  *string `json:"url"`
}

// UpdateLink validates the social-link update payload
func UpdateLink() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateLinkRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Name == nil && reqData.URL == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"fields": "Nothing to update!",
			})
		}

		c.Locals("validatedLinkUpdate", reqData)
		return c.Next()
	}
}

// LinkID validates the :id path parameter
func LinkID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Link ID!", nil)
		}

		c.Locals("linkID", uint(id))
		return c.Next()
	}
}
