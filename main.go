package main

import (
	"log"

	"github.com/Nanokwok/StudyBuddy/config"
	"github.com/Nanokwok/StudyBuddy/database"
	authRoutes "github.com/Nanokwok/StudyBuddy/routers/authRoutes"
	courseRoutes "github.com/Nanokwok/StudyBuddy/routers/courseRoutes"
	friendshipRoutes "github.com/Nanokwok/StudyBuddy/routers/friendshipRoutes"
	sessionRoutes "github.com/Nanokwok/StudyBuddy/routers/sessionRoutes"
	socialRoutes "github.com/Nanokwok/StudyBuddy/routers/socialRoutes"
	userRoutes "github.com/Nanokwok/StudyBuddy/routers/userRoutes"
	"github.com/Nanokwok/StudyBuddy/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded media (profile pictures)
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	friendshipRoutes.SetupFriendshipRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	socialRoutes.SetupSocialRoutes(app)
	sessionRoutes.SetupSessionRoutes(app)

	// Daily class reminder emails
	reminderCron := utils.StartReminderScheduler()
	defer reminderCron.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
