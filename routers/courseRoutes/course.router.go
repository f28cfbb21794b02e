package courseRoutes

import (
	courseControllers "github.com/Nanokwok/StudyBuddy/controllers/course"
	"github.com/Nanokwok/StudyBuddy/middleware"
	courseValidators "github.com/Nanokwok/StudyBuddy/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", middleware.JWTMiddleware, courseControllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, courseValidators.CourseID(), courseControllers.GetCourseDetails)
	courseGroup.Get("/:id/enrolled_users", middleware.JWTMiddleware, courseValidators.CourseID(), courseControllers.GetEnrolledUsers)

	enrollmentGroup := app.Group("/enrollments")

	enrollmentGroup.Get("/", middleware.JWTMiddleware, courseControllers.GetEnrollments)
	enrollmentGroup.Get("/upcoming_sessions", middleware.JWTMiddleware, courseControllers.UpcomingSessions)
	enrollmentGroup.Post("/enroll", middleware.JWTMiddleware, courseValidators.EnrollRequest(), courseControllers.Enroll)
	enrollmentGroup.Post("/unenroll", middleware.JWTMiddleware, courseValidators.EnrollRequest(), courseControllers.Unenroll)
}
