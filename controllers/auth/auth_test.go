package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Nanokwok/StudyBuddy/models"
	authRoutes "github.com/Nanokwok/StudyBuddy/routers/authRoutes"
	"github.com/Nanokwok/StudyBuddy/testutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	jsonData, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

func TestRegister(t *testing.T) {
	app, db := setupApp(t)

	resp, result := doRequest(t, app, "POST", "/auth/register", fiber.Map{
		"username":   "alice",
		"email":      "alice@example.com",
		"password":   "password123",
		"first_name": "Alice",
		"last_name":  "Nguyen",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "alice", data["username"])
	assert.Equal(t, "Alice Nguyen", data["name"])

	// The password is stored hashed, never returned
	_, hasPassword := data["password"]
	assert.False(t, hasPassword)
	var user models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	assert.NotEqual(t, "password123", user.Password)

	// Duplicate username conflicts
	resp, _ = doRequest(t, app, "POST", "/auth/register", fiber.Map{
		"username": "alice",
		"email":    "other@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Duplicate email conflicts
	resp, _ = doRequest(t, app, "POST", "/auth/register", fiber.Map{
		"username": "alice2",
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	app, _ := setupApp(t)

	// Short password
	resp, _ := doRequest(t, app, "POST", "/auth/register", fiber.Map{
		"username": "bob",
		"email":    "bob@example.com",
		"password": "short",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// Bad email
	resp, _ = doRequest(t, app, "POST", "/auth/register", fiber.Map{
		"username": "bob",
		"email":    "not-an-email",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	app, _ := setupApp(t)

	doRequest(t, app, "POST", "/auth/register", fiber.Map{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "password123",
	})

	// Login by username
	resp, result := doRequest(t, app, "POST", "/auth/login", fiber.Map{
		"username": "alice",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := result["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	// Login by email
	resp, _ = doRequest(t, app, "POST", "/auth/login", fiber.Map{
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Wrong password
	resp, _ = doRequest(t, app, "POST", "/auth/login", fiber.Map{
		"username": "alice",
		"password": "wrongpassword",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Unknown user
	resp, _ = doRequest(t, app, "POST", "/auth/login", fiber.Map{
		"username": "nobody",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
