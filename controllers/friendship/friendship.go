package friendshipController

import (
	"errors"
	"log"

	"github.com/Nanokwok/StudyBuddy/config"
	"github.com/Nanokwok/StudyBuddy/database"
	"github.com/Nanokwok/StudyBuddy/middleware"
	"github.com/Nanokwok/StudyBuddy/models"
	"github.com/Nanokwok/StudyBuddy/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func serializeFriendship(f models.Friendship, resolver *utils.MediaResolver) fiber.Map {
	return fiber.Map{
		"friendship_id": f.ID,
		"requester":     utils.BasicUser(f.Requester, resolver),
		"addressee":     utils.BasicUser(f.Addressee, resolver),
		"status":        f.Status,
		"created_at":    f.CreatedAt,
		"updated_at":    f.UpdatedAt,
	}
}

// RequestFriendship creates a pending friendship from the acting user toward
// the addressee. The ordered pair (requester, addressee) must not already
// exist in any status; the reverse direction is a separate edge.
func RequestFriendship(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	addresseeID := c.Locals("addresseeID").(uint)

	if addresseeID == userID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot send a friend request to yourself!", nil)
	}

	db := database.Database.Db

	var addressee models.User
	if err := db.Where("id = ? AND is_deleted = ?", addresseeID, false).First(&addressee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	// Check for an existing row with this exact ordered pair, any status
	var existing models.Friendship
	if err := db.Where("requester_id = ? AND addressee_id = ?", userID, addresseeID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Friendship request already exists!", nil)
	}

	friendship := models.Friendship{
		RequesterID: userID,
		AddresseeID: addresseeID,
		Status:      models.FriendshipPending,
	}

	// The composite unique index backstops duplicate-request races
	if err := db.Create(&friendship).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Friendship request already exists!", nil)
		}
		log.Printf("Error creating friendship: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send friend request!", nil)
	}

	if err := db.Preload("Requester").Preload("Addressee").First(&friendship, friendship.ID).Error; err != nil {
		log.Printf("Error reloading friendship: %v", err)
	}

	go func(addressee models.User, requester models.User) {
		if err := utils.SendFriendRequestEmail(addressee.Email, addressee.DisplayName(), requester.DisplayName()); err != nil {
			log.Printf("Error sending friend request email: %v", err)
		}
	}(friendship.Addressee, friendship.Requester)

	resolver := utils.NewMediaResolver(config.AppConfig.MediaBaseURL)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Friend request sent successfully!", serializeFriendship(friendship, resolver))
}

// respondToFriendship applies accept/reject. Only the addressee may respond;
// the check is identity-based, so re-accepting an already accepted row by
// the addressee succeeds as a no-op.
func respondToFriendship(c *fiber.Ctx, newStatus string) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	friendshipID := c.Locals("friendshipID").(uint)

	db := database.Database.Db

	var friendship models.Friendship
	if err := db.Preload("Requester").Preload("Addressee").First(&friendship, friendshipID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Friendship not found!", nil)
	}

	if friendship.AddresseeID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the request recipient can respond to the friendship!", nil)
	}

	friendship.Status = newStatus
	if err := db.Model(&friendship).Update("status", newStatus).Error; err != nil {
		log.Printf("Error updating friendship %d: %v", friendshipID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update friendship!", nil)
	}

	resolver := utils.NewMediaResolver(config.AppConfig.MediaBaseURL)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Friendship "+newStatus+"!", serializeFriendship(friendship, resolver))
}

func AcceptFriendship(c *fiber.Ctx) error {
	return respondToFriendship(c, models.FriendshipAccepted)
}

func RejectFriendship(c *fiber.Ctx) error {
	return respondToFriendship(c, models.FriendshipRejected)
}

// Unfriend deletes the accepted friendship between the acting user and the
// given friend, whichever direction the original request ran. The pair can
// re-request from scratch afterward.
func Unfriend(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	friendID := c.Locals("friendID").(uint)

	db := database.Database.Db

	var friendship models.Friendship
	err := db.Where(
		"status = ? AND ((requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?))",
		models.FriendshipAccepted, userID, friendID, friendID, userID,
	).First(&friendship).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No accepted friendship with this user!", nil)
	}

	if err := db.Unscoped().Delete(&friendship).Error; err != nil {
		log.Printf("Error deleting friendship %d: %v", friendship.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unfriend!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unfriended successfully!", nil)
}

// AddableUsers lists users the acting user can send a fresh friend request
// to: everyone except themselves and anyone who shares a pending or accepted
// row with them in either direction. Rejected rows do not exclude, so a
// rejected requester becomes addable again. The set is recomputed per call.
func AddableUsers(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var friendships []models.Friendship
	if err := db.Where("(requester_id = ? OR addressee_id = ?) AND status <> ?",
		userID, userID, models.FriendshipRejected).Find(&friendships).Error; err != nil {
		log.Printf("Error fetching friendships: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	excluded := map[uint]bool{userID: true}
	for _, f := range friendships {
		excluded[f.RequesterID] = true
		excluded[f.AddresseeID] = true
	}

	var users []models.User
	if err := db.Where("is_deleted = ?", false).Find(&users).Error; err != nil {
		log.Printf("Error fetching users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	var candidates []models.User
	candidateIDs := make([]uint, 0, len(users))
	for _, u := range users {
		if !excluded[u.ID] {
			candidates = append(candidates, u)
			candidateIDs = append(candidateIDs, u.ID)
		}
	}

	// One query for every candidate's enrollments to build the tag lists
	tagsByUser := make(map[uint][]string)
	if len(candidateIDs) > 0 {
		var enrollments []models.Enrollment
		if err := db.Where("user_id IN ?", candidateIDs).Preload("Course").Find(&enrollments).Error; err != nil {
			log.Printf("Error fetching enrollments: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
		}
		for _, e := range enrollments {
			tagsByUser[e.UserID] = append(tagsByUser[e.UserID], e.Course.Title)
		}
	}

	resolver := utils.NewMediaResolver(config.AppConfig.MediaBaseURL)
	result := make([]fiber.Map, 0, len(candidates))
	for _, u := range candidates {
		tags := tagsByUser[u.ID]
		if tags == nil {
			tags = []string{}
		}
		result = append(result, fiber.Map{
			"id":                  u.ID,
			"name":                u.DisplayName(),
			"bio":                 u.Bio,
			"profile_picture_url": resolver.Resolve(u.ProfilePicture),
			"tags":                tags,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Addable users fetched successfully!", result)
}
