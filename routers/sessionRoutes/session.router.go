package sessionRoutes

import (
	sessionControllers "github.com/Nanokwok/StudyBuddy/controllers/session"
	"github.com/Nanokwok/StudyBuddy/middleware"
	sessionValidators "github.com/Nanokwok/StudyBuddy/validators/session"

	"github.com/gofiber/fiber/v2"
)

func SetupSessionRoutes(app *fiber.App) {
	sessionGroup := app.Group("/study-sessions")

	sessionGroup.Get("/", middleware.JWTMiddleware, sessionControllers.GetSessions)
	sessionGroup.Post("/", middleware.JWTMiddleware, sessionValidators.CreateSession(), sessionControllers.CreateSession)
	sessionGroup.Get("/:id", middleware.JWTMiddleware, sessionValidators.SessionID(), sessionControllers.GetSessionDetails)
	sessionGroup.Post("/:id/join", middleware.JWTMiddleware, sessionValidators.SessionID(), sessionControllers.JoinSession)
	sessionGroup.Post("/:id/leave", middleware.JWTMiddleware, sessionValidators.SessionID(), sessionControllers.LeaveSession)
}
