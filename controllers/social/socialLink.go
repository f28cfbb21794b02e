package socialController

import (
	"errors"
	"log"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Nanokwok/StudyBuddy/database"
	"github.com/Nanokwok/StudyBuddy/middleware"
	"github.com/Nanokwok/StudyBuddy/models"
	socialValidator "github.com/Nanokwok/StudyBuddy/validators/social"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// normalizePlatform capitalizes the platform name: "facebook" -> "Facebook".
// The first rune is decoded properly so multi-byte names survive.
func normalizePlatform(platform string) string {
	platform = strings.TrimSpace(platform)
	if platform == "" {
		return platform
	}
	first, size := utf8.DecodeRuneInString(platform)
	return string(unicode.ToUpper(first)) + strings.ToLower(platform[size:])
}

// GetMyLinks lists the acting user's social links
func GetMyLinks(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var links []models.SocialLink
	if err := database.Database.Db.Where("user_id = ?", userID).Find(&links).Error; err != nil {
		log.Printf("Error fetching social links for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch social links!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Social links fetched successfully!", links)
}

// CreateLink adds a social link for the acting user, one per platform
func CreateLink(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedLink").(*socialValidator.CreateLinkRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db
	platform := normalizePlatform(reqData.Platform)

	// Check for an existing link on this platform
	if err := db.Where("user_id = ? AND platform = ?", userID, platform).First(&models.SocialLink{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A link for this platform already exists!", nil)
	}

	link := models.SocialLink{
		UserID:   userID,
		Platform: platform,
		Name:     strings.TrimSpace(reqData.Name),
		URL:      strings.TrimSpace(reqData.URL),
	}

	// The (user, platform) unique index backstops duplicate races
	if err := db.Create(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A link for this platform already exists!", nil)
		}
		log.Printf("Error creating social link: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create social link!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Social link created successfully!", link)
}

// findOwnLink loads a link and checks it belongs to the acting user
func findOwnLink(c *fiber.Ctx) (*models.SocialLink, error) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	linkID := c.Locals("linkID").(uint)

	var link models.SocialLink
	if err := database.Database.Db.First(&link, linkID).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Social link not found!", nil)
	}

	if link.UserID != userID {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only manage your own social links!", nil)
	}

	return &link, nil
}

// UpdateLink edits the label or URL of one of the acting user's links
func UpdateLink(c *fiber.Ctx) error {
	link, errResp := findOwnLink(c)
	if link == nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedLinkUpdate").(*socialValidator.UpdateLinkRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = strings.TrimSpace(*reqData.Name)
	}
	if reqData.URL != nil {
		updates["url"] = strings.TrimSpace(*reqData.URL)
	}

	if err := database.Database.Db.Model(link).Updates(updates).Error; err != nil {
		log.Printf("Error updating social link %d: %v", link.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update social link!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Social link updated successfully!", link)
}

// DeleteLink removes one of the acting user's links
func DeleteLink(c *fiber.Ctx) error {
	link, errResp := findOwnLink(c)
	if link == nil {
		return errResp
	}

	if err := database.Database.Db.Unscoped().Delete(link).Error; err != nil {
		log.Printf("Error deleting social link %d: %v", link.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete social link!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Social link deleted successfully!", nil)
}
