package authRoutes

import (
	authControllers "github.com/Nanokwok/StudyBuddy/controllers/auth"
	authValidators "github.com/Nanokwok/StudyBuddy/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
}
