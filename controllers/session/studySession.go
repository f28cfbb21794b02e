package sessionController

import (
	"errors"
	"log"

	"github.com/Nanokwok/StudyBuddy/config"
	"github.com/Nanokwok/StudyBuddy/database"
	"github.com/Nanokwok/StudyBuddy/middleware"
	"github.com/Nanokwok/StudyBuddy/models"
	"github.com/Nanokwok/StudyBuddy/utils"
	sessionValidator "github.com/Nanokwok/StudyBuddy/validators/session"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateSession creates a study session with the acting user as creator
func CreateSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSession").(*sessionValidator.CreateSessionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&models.Course{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	session := models.StudySession{
		CreatorID:   userID,
		CourseID:    reqData.CourseID,
		Title:       reqData.Title,
		Description: reqData.Description,
		StartTime:   reqData.StartTime,
		EndTime:     reqData.EndTime,
		Location:    reqData.Location,
		IsVirtual:   reqData.IsVirtual,
		MeetingLink: reqData.MeetingLink,
	}

	if err := db.Create(&session).Error; err != nil {
		log.Printf("Error creating study session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create study session!", nil)
	}

	if err := db.Preload("Creator").Preload("Course").First(&session, session.ID).Error; err != nil {
		log.Printf("Error reloading study session: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Study session created successfully!", session)
}

// GetSessions lists all study sessions
func GetSessions(c *fiber.Ctx) error {
	var sessions []models.StudySession
	err := database.Database.Db.Preload("Creator").Preload("Course").
		Order("start_time asc").Find(&sessions).Error
	if err != nil {
		log.Printf("Error fetching study sessions: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch study sessions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study sessions fetched successfully!", sessions)
}

// GetSessionDetails returns one session with its participants
func GetSessionDetails(c *fiber.Ctx) error {
	sessionID := c.Locals("sessionID").(uint)
	db := database.Database.Db

	var session models.StudySession
	if err := db.Preload("Creator").Preload("Course").First(&session, sessionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Study session not found!", nil)
	}

	var participants []models.SessionParticipant
	if err := db.Where("session_id = ?", sessionID).Preload("User").Find(&participants).Error; err != nil {
		log.Printf("Error fetching participants for session %d: %v", sessionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch study session!", nil)
	}

	resolver := utils.NewMediaResolver(config.AppConfig.MediaBaseURL)
	participantList := make([]fiber.Map, 0, len(participants))
	for _, p := range participants {
		participantList = append(participantList, fiber.Map{
			"participant_id": p.ID,
			"user":           utils.BasicUser(p.User, resolver),
			"joined_at":      p.CreatedAt,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study session fetched successfully!", fiber.Map{
		"session":      session,
		"participants": participantList,
	})
}

// JoinSession adds the acting user as a participant
func JoinSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	sessionID := c.Locals("sessionID").(uint)

	db := database.Database.Db

	if err := db.First(&models.StudySession{}, sessionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Study session not found!", nil)
	}

	// Check if already a participant
	if err := db.Where("session_id = ? AND user_id = ?", sessionID, userID).First(&models.SessionParticipant{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already a participant in this session!", nil)
	}

	participant := models.SessionParticipant{
		SessionID: sessionID,
		UserID:    userID,
	}

	// The (session, user) unique index backstops duplicate-join races
	if err := db.Create(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already a participant in this session!", nil)
		}
		log.Printf("Error joining session %d: %v", sessionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to join study session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Joined study session successfully!", participant)
}

// LeaveSession removes the acting user from a session's participants
func LeaveSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	sessionID := c.Locals("sessionID").(uint)

	db := database.Database.Db

	var participant models.SessionParticipant
	if err := db.Where("session_id = ? AND user_id = ?", sessionID, userID).First(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not a participant in this session!", nil)
	}

	if err := db.Unscoped().Delete(&participant).Error; err != nil {
		log.Printf("Error leaving session %d: %v", sessionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to leave study session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Left study session successfully!", nil)
}
