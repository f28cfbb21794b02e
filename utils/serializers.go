package utils

import "github.com/Nanokwok/StudyBuddy/models"

// BasicUser shapes a user for embedding in other records.
func BasicUser(u models.User, resolver *MediaResolver) map[string]interface{} {
	return map[string]interface{}{
		"id":                  u.ID,
		"username":            u.Username,
		"first_name":          u.FirstName,
		"last_name":           u.LastName,
		"profile_picture_url": resolver.Resolve(u.ProfilePicture),
	}
}

// PublicUser shapes a user for profile responses.
func PublicUser(u models.User, resolver *MediaResolver) map[string]interface{} {
	return map[string]interface{}{
		"id":                  u.ID,
		"username":            u.Username,
		"email":               u.Email,
		"first_name":          u.FirstName,
		"last_name":           u.LastName,
		"name":                u.DisplayName(),
		"bio":                 u.Bio,
		"profile_picture_url": resolver.Resolve(u.ProfilePicture),
		"last_login":          u.LastLogin,
		"created_at":          u.CreatedAt,
	}
}
