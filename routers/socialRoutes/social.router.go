package socialRoutes

import (
	socialControllers "github.com/Nanokwok/StudyBuddy/controllers/social"
	"github.com/Nanokwok/StudyBuddy/middleware"
	socialValidators "github.com/Nanokwok/StudyBuddy/validators/social"

	"github.com/gofiber/fiber/v2"
)

func SetupSocialRoutes(app *fiber.App) {
	socialGroup := app.Group("/social-links")

	socialGroup.Get("/", middleware.JWTMiddleware, socialControllers.GetMyLinks)
	socialGroup.Post("/", middleware.JWTMiddleware, socialValidators.CreateLink(), socialControllers.CreateLink)
	socialGroup.Patch("/:id", middleware.JWTMiddleware, socialValidators.LinkID(), socialValidators.UpdateLink(), socialControllers.UpdateLink)
	socialGroup.Delete("/:id", middleware.JWTMiddleware, socialValidators.LinkID(), socialControllers.DeleteLink)
}
