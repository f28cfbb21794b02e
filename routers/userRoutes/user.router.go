package userRoutes

import (
	userController "github.com/Nanokwok/StudyBuddy/controllers/userControllers"
	"github.com/Nanokwok/StudyBuddy/middleware"
	userValidator "github.com/Nanokwok/StudyBuddy/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users")

	// Routes on the acting user come before the :id routes so that "me" and
	// "pending_friend_requests" are not swallowed by the :id parameter.
	userGroup.Get("/me", middleware.JWTMiddleware, userController.GetMe)
	userGroup.Patch("/me", middleware.JWTMiddleware, userValidator.UpdateProfile(), userController.UpdateMe)
	userGroup.Post("/me/upload_profile_picture", middleware.JWTMiddleware, userController.UploadProfilePicture)
	userGroup.Get("/pending_friend_requests", middleware.JWTMiddleware, userController.GetPendingFriendRequests)

	userGroup.Get("/:id", middleware.JWTMiddleware, userValidator.UserID(), userController.GetUser)
	userGroup.Get("/:id/courses", middleware.JWTMiddleware, userValidator.UserID(), userController.GetUserCourses)
	userGroup.Get("/:id/friendships", middleware.JWTMiddleware, userValidator.UserID(), userController.GetUserFriendships)
	userGroup.Get("/:id/friendship_count", middleware.JWTMiddleware, userValidator.UserID(), userController.GetFriendshipCount)
	userGroup.Get("/:id/social_links", middleware.JWTMiddleware, userValidator.UserID(), userController.GetUserSocialLinks)
	userGroup.Get("/:id/study_sessions", middleware.JWTMiddleware, userValidator.UserID(), userController.GetUserStudySessions)
}
