package userController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Nanokwok/StudyBuddy/models"
	userRoutes "github.com/Nanokwok/StudyBuddy/routers/userRoutes"
	"github.com/Nanokwok/StudyBuddy/testutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	app := fiber.New()
	userRoutes.SetupUserRoutes(app)
	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

func TestGetMeAndUpdateMe(t *testing.T) {
	app, db := setupApp(t)
	_, aliceToken := testutils.CreateTestUser(t, db, "alice")

	resp, result := doRequest(t, app, "GET", "/users/me", aliceToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "alice", data["username"])
	assert.Equal(t, "alice", data["name"]) // falls back to username without first/last

	resp, result = doRequest(t, app, "PATCH", "/users/me", aliceToken, fiber.Map{
		"first_name": "Alice",
		"last_name":  "Nguyen",
		"bio":        "Third year CS student",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = result["data"].(map[string]interface{})
	assert.Equal(t, "Alice Nguyen", data["name"])
	assert.Equal(t, "Third year CS student", data["bio"])

	// Partial updates leave other fields alone
	resp, result = doRequest(t, app, "PATCH", "/users/me", aliceToken, fiber.Map{"bio": "Updated bio"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = result["data"].(map[string]interface{})
	assert.Equal(t, "Alice Nguyen", data["name"])
	assert.Equal(t, "Updated bio", data["bio"])

	// An empty body has nothing to update
	resp, _ = doRequest(t, app, "PATCH", "/users/me", aliceToken, fiber.Map{})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = doRequest(t, app, "GET", "/users/me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetUser(t *testing.T) {
	app, db := setupApp(t)
	_, aliceToken := testutils.CreateTestUser(t, db, "alice")
	bob, _ := testutils.CreateTestUser(t, db, "bob")

	resp, result := doRequest(t, app, "GET", fmt.Sprintf("/users/%d", bob.ID), aliceToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "bob", data["username"])

	// The password hash is never serialized
	_, hasPassword := data["password"]
	assert.False(t, hasPassword)

	resp, _ = doRequest(t, app, "GET", "/users/9999", aliceToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, app, "GET", "/users/abc", aliceToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestFriendshipViews(t *testing.T) {
	app, db := setupApp(t)
	alice, aliceToken := testutils.CreateTestUser(t, db, "alice")
	bob, bobToken := testutils.CreateTestUser(t, db, "bob")
	carol, _ := testutils.CreateTestUser(t, db, "carol")

	// bob -> alice pending, carol -> alice accepted
	require.NoError(t, db.Create(&models.Friendship{
		RequesterID: bob.ID, AddresseeID: alice.ID, Status: models.FriendshipPending,
	}).Error)
	require.NoError(t, db.Create(&models.Friendship{
		RequesterID: carol.ID, AddresseeID: alice.ID, Status: models.FriendshipAccepted,
	}).Error)

	resp, result := doRequest(t, app, "GET", "/users/pending_friend_requests", aliceToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	pending := result["data"].([]interface{})
	require.Len(t, pending, 1)
	row := pending[0].(map[string]interface{})
	assert.Equal(t, "bob", row["requester"].(map[string]interface{})["username"])

	// bob has no pending requests addressed to him
	resp, result = doRequest(t, app, "GET", "/users/pending_friend_requests", bobToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, result["data"].([]interface{}), 0)

	// Accepted rows count in either direction
	resp, result = doRequest(t, app, "GET", fmt.Sprintf("/users/%d/friendship_count", alice.ID), aliceToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), result["data"].(map[string]interface{})["count"])

	resp, result = doRequest(t, app, "GET", fmt.Sprintf("/users/%d/friendship_count", carol.ID), aliceToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), result["data"].(map[string]interface{})["count"])

	// The friendships view splits by direction
	resp, result = doRequest(t, app, "GET", fmt.Sprintf("/users/%d/friendships", alice.ID), aliceToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := result["data"].(map[string]interface{})
	assert.Len(t, data["sent_requests"].([]interface{}), 0)
	assert.Len(t, data["received_requests"].([]interface{}), 2)
}

func TestGetUserCoursesAndSocialLinks(t *testing.T) {
	app, db := setupApp(t)
	alice, aliceToken := testutils.CreateTestUser(t, db, "alice")
	course := testutils.CreateTestCourse(t, db, "CS101", "Intro to CS", "Monday", "10:00")

	require.NoError(t, db.Create(&models.Enrollment{UserID: alice.ID, CourseID: course.ID}).Error)
	require.NoError(t, db.Create(&models.SocialLink{
		UserID: alice.ID, Platform: "Instagram", Name: "alice.gram", URL: "https://instagram.com/alice.gram",
	}).Error)

	resp, result := doRequest(t, app, "GET", fmt.Sprintf("/users/%d/courses", alice.ID), aliceToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	enrollments := result["data"].([]interface{})
	require.Len(t, enrollments, 1)
	embedded := enrollments[0].(map[string]interface{})["course"].(map[string]interface{})
	assert.Equal(t, "Intro to CS", embedded["title"])

	resp, result = doRequest(t, app, "GET", fmt.Sprintf("/users/%d/social_links", alice.ID), aliceToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	links := result["data"].([]interface{})
	require.Len(t, links, 1)
	assert.Equal(t, "Instagram", links[0].(map[string]interface{})["platform"])
}

func TestGetUserStudySessions(t *testing.T) {
	app, db := setupApp(t)
	alice, aliceToken := testutils.CreateTestUser(t, db, "alice")
	bob, _ := testutils.CreateTestUser(t, db, "bob")
	course := testutils.CreateTestCourse(t, db, "CS101", "Intro to CS", "Monday", "10:00")

	start := time.Now().Add(24 * time.Hour)
	created := models.StudySession{
		CreatorID: alice.ID, CourseID: course.ID, Title: "Alice's review",
		StartTime: start, EndTime: start.Add(time.Hour),
	}
	require.NoError(t, db.Create(&created).Error)

	joined := models.StudySession{
		CreatorID: bob.ID, CourseID: course.ID, Title: "Bob's review",
		StartTime: start, EndTime: start.Add(time.Hour),
	}
	require.NoError(t, db.Create(&joined).Error)
	require.NoError(t, db.Create(&models.SessionParticipant{SessionID: joined.ID, UserID: alice.ID}).Error)

	resp, result := doRequest(t, app, "GET", fmt.Sprintf("/users/%d/study_sessions", alice.ID), aliceToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := result["data"].(map[string]interface{})

	createdList := data["created_sessions"].([]interface{})
	require.Len(t, createdList, 1)
	assert.Equal(t, "Alice's review", createdList[0].(map[string]interface{})["title"])

	joinedList := data["participating_sessions"].([]interface{})
	require.Len(t, joinedList, 1)
	assert.Equal(t, "Bob's review", joinedList[0].(map[string]interface{})["title"])
}
