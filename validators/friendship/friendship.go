package friendshipValidator

import (
	"strconv"
	"strings"

	"github.com/Nanokwok/StudyBuddy/middleware"

	"github.com/gofiber/fiber/v2"
)

// RequestFriendship validates the friend-request payload
func RequestFriendship() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			AddresseeID *uint `json:"addressee_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.AddresseeID == nil || *reqData.AddresseeID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"addressee_id": "Addressee ID is required!",
			})
		}

		c.Locals("addresseeID", *reqData.AddresseeID)
		return c.Next()
	}
}

// FriendshipID validates the :id path parameter
func FriendshipID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Friendship ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Friendship ID!", nil)
		}

		c.Locals("friendshipID", uint(id))
		return c.Next()
	}
}

// Unfriend validates the unfriend payload
func Unfriend() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FriendID *uint `json:"friend_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.FriendID == nil || *reqData.FriendID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"friend_id": "Friend ID is required!",
			})
		}

		c.Locals("friendID", *reqData.FriendID)
		return c.Next()
	}
}
