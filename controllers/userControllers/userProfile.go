package userController

import (
	"log"

	"github.com/Nanokwok/StudyBuddy/config"
	"github.com/Nanokwok/StudyBuddy/database"
	"github.com/Nanokwok/StudyBuddy/middleware"
	"github.com/Nanokwok/StudyBuddy/models"
	"github.com/Nanokwok/StudyBuddy/utils"
	userValidator "github.com/Nanokwok/StudyBuddy/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func currentUser(c *fiber.Ctx) (*models.User, error) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetMe returns the acting user's own profile
func GetMe(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	resolver := utils.NewMediaResolver(config.AppConfig.MediaBaseURL)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", utils.PublicUser(*user, resolver))
}

// UpdateMe updates the acting user's name and bio
func UpdateMe(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*userValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.FirstName != nil {
		updates["first_name"] = *reqData.FirstName
	}
	if reqData.LastName != nil {
		updates["last_name"] = *reqData.LastName
	}
	if reqData.Bio != nil {
		updates["bio"] = *reqData.Bio
	}

	if err := database.Database.Db.Model(user).Updates(updates).Error; err != nil {
		log.Printf("Error updating profile for %s: %v", user.Username, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	resolver := utils.NewMediaResolver(config.AppConfig.MediaBaseURL)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", utils.PublicUser(*user, resolver))
}

// UploadProfilePicture stores a multipart image and records its path
func UploadProfilePicture(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	file, err := c.FormFile("profile_picture")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Profile picture file is required!", nil)
	}

	filename, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Error saving profile picture for %s: %v", user.Username, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save profile picture!", nil)
	}

	if err := database.Database.Db.Model(user).Update("profile_picture", filename).Error; err != nil {
		log.Printf("Error updating profile picture for %s: %v", user.Username, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile picture!", nil)
	}

	resolver := utils.NewMediaResolver(config.AppConfig.MediaBaseURL)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile picture updated successfully!", fiber.Map{
		"profile_picture_url": resolver.Resolve(filename),
	})
}

// GetUser returns another user's public profile
func GetUser(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	resolver := utils.NewMediaResolver(config.AppConfig.MediaBaseURL)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", utils.PublicUser(user, resolver))
}

// GetUserCourses lists a user's enrollments with embedded courses
func GetUserCourses(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(uint)

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("user_id = ?", targetID).Preload("Course").Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching courses for user %d: %v", targetID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", enrollments)
}

// GetUserFriendships returns the rows where the user appears on either side
func GetUserFriendships(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(uint)
	db := database.Database.Db

	var sent []models.Friendship
	if err := db.Where("requester_id = ?", targetID).Preload("Requester").Preload("Addressee").Find(&sent).Error; err != nil {
		log.Printf("Error fetching sent friendships for user %d: %v", targetID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch friendships!", nil)
	}

	var received []models.Friendship
	if err := db.Where("addressee_id = ?", targetID).Preload("Requester").Preload("Addressee").Find(&received).Error; err != nil {
		log.Printf("Error fetching received friendships for user %d: %v", targetID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch friendships!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Friendships fetched successfully!", fiber.Map{
		"sent_requests":     sent,
		"received_requests": received,
	})
}

// GetFriendshipCount counts accepted friendships in either direction
func GetFriendshipCount(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(uint)

	var count int64
	err := database.Database.Db.Model(&models.Friendship{}).
		Where("status = ? AND (requester_id = ? OR addressee_id = ?)", models.FriendshipAccepted, targetID, targetID).
		Count(&count).Error
	if err != nil {
		log.Printf("Error counting friendships for user %d: %v", targetID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to count friendships!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Friendship count fetched successfully!", fiber.Map{
		"count": count,
	})
}

// GetPendingFriendRequests lists pending requests addressed to the acting user
func GetPendingFriendRequests(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var pending []models.Friendship
	err := database.Database.Db.
		Where("addressee_id = ? AND status = ?", userID, models.FriendshipPending).
		Preload("Requester").Preload("Addressee").
		Order("created_at desc").
		Find(&pending).Error
	if err != nil {
		log.Printf("Error fetching pending requests for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending friend requests fetched successfully!", pending)
}

// GetUserSocialLinks lists a user's social-media links
func GetUserSocialLinks(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(uint)

	var links []models.SocialLink
	if err := database.Database.Db.Where("user_id = ?", targetID).Find(&links).Error; err != nil {
		log.Printf("Error fetching social links for user %d: %v", targetID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch social links!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Social links fetched successfully!", links)
}

// GetUserStudySessions splits a user's sessions into created and joined
func GetUserStudySessions(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(uint)
	db := database.Database.Db

	var created []models.StudySession
	if err := db.Where("creator_id = ?", targetID).Preload("Creator").Preload("Course").Find(&created).Error; err != nil {
		log.Printf("Error fetching created sessions for user %d: %v", targetID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch study sessions!", nil)
	}

	var participating []models.StudySession
	err := db.Joins("JOIN session_participants ON session_participants.session_id = study_sessions.id").
		Where("session_participants.user_id = ? AND study_sessions.creator_id <> ?", targetID, targetID).
		Preload("Creator").Preload("Course").
		Find(&participating).Error
	if err != nil {
		log.Printf("Error fetching joined sessions for user %d: %v", targetID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch study sessions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study sessions fetched successfully!", fiber.Map{
		"created_sessions":       created,
		"participating_sessions": participating,
	})
}
