package friendshipRoutes

import (
	friendshipControllers "github.com/Nanokwok/StudyBuddy/controllers/friendship"
	"github.com/Nanokwok/StudyBuddy/middleware"
	friendshipValidators "github.com/Nanokwok/StudyBuddy/validators/friendship"

	"github.com/gofiber/fiber/v2"
)

func SetupFriendshipRoutes(app *fiber.App) {
	friendshipGroup := app.Group("/friendships")

	friendshipGroup.Post("/request_friendship", middleware.JWTMiddleware, friendshipValidators.RequestFriendship(), friendshipControllers.RequestFriendship)
	friendshipGroup.Post("/unfriend", middleware.JWTMiddleware, friendshipValidators.Unfriend(), friendshipControllers.Unfriend)
	friendshipGroup.Get("/addable-users", middleware.JWTMiddleware, friendshipControllers.AddableUsers)
	friendshipGroup.Post("/:id/accept", middleware.JWTMiddleware, friendshipValidators.FriendshipID(), friendshipControllers.AcceptFriendship)
	friendshipGroup.Post("/:id/reject", middleware.JWTMiddleware, friendshipValidators.FriendshipID(), friendshipControllers.RejectFriendship)
}
