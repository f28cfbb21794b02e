package authController

import (
	"errors"
	"log"
	"time"

	"github.com/Nanokwok/StudyBuddy/config"
	"github.com/Nanokwok/StudyBuddy/database"
	"github.com/Nanokwok/StudyBuddy/middleware"
	"github.com/Nanokwok/StudyBuddy/models"
	"github.com/Nanokwok/StudyBuddy/utils"
	authValidator "github.com/Nanokwok/StudyBuddy/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Check if username already exists
	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
	}

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Username:  reqData.Username,
		Email:     reqData.Email,
		Password:  string(hashedPassword),
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
	}

	// Create User; the unique indexes on username/email backstop races
	if err := db.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username or email is already registered!", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	// Generate a default avatar in the background
	go func(user models.User) {
		filename, err := utils.FetchDefaultAvatar(config.AppConfig.AvatarApiURL, user.DisplayName(), config.AppConfig.UploadDir)
		if err != nil {
			log.Printf("Error fetching default avatar for %s: %v", user.Username, err)
			return
		}
		if err := database.Database.Db.Model(&models.User{}).Where("id = ? AND profile_picture = ''", user.ID).
			Update("profile_picture", filename).Error; err != nil {
			log.Printf("Error saving default avatar for %s: %v", user.Username, err)
		}
	}(newUser)

	resolver := utils.NewMediaResolver(config.AppConfig.MediaBaseURL)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", utils.PublicUser(newUser, resolver))
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var user models.User
	var result *gorm.DB
	if reqData.Email != "" {
		result = db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user)
	} else {
		result = db.Where("username = ? AND is_deleted = ?", reqData.Username, false).First(&user)
	}
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Compare password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Track last login
	user.LastLogin = time.Now()
	if err := db.Model(&user).Update("last_login", user.LastLogin).Error; err != nil {
		log.Printf("Error updating last login for %s: %v", user.Username, err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	resolver := utils.NewMediaResolver(config.AppConfig.MediaBaseURL)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"user":  utils.PublicUser(user, resolver),
	})
}
