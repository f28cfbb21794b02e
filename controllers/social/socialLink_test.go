package socialController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/Nanokwok/StudyBuddy/models"
	socialRoutes "github.com/Nanokwok/StudyBuddy/routers/socialRoutes"
	"github.com/Nanokwok/StudyBuddy/testutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	app := fiber.New()
	socialRoutes.SetupSocialRoutes(app)
	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
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

func TestCreateLinkNormalizesPlatform(t *testing.T) {
	app, db := setupApp(t)
	_, token := testutils.CreateTestUser(t, db, "alice")

	resp, result := doRequest(t, app, "POST", "/social-links/", token,
		fiber.Map{"platform": "facebook", "name": "alice.fb", "url": "https://facebook.com/alice"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "Facebook", data["platform"])

	var link models.SocialLink
	require.NoError(t, db.First(&link).Error)
	assert.Equal(t, "Facebook", link.Platform)

	// A multi-byte first rune upcases as a rune, not as a raw byte
	resp, result = doRequest(t, app, "POST", "/social-links/", token,
		fiber.Map{"platform": "über", "name": "alice.ue"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	data = result["data"].(map[string]interface{})
	assert.Equal(t, "Über", data["platform"])
}

func TestCreateLinkDuplicatePlatform(t *testing.T) {
	app, db := setupApp(t)
	_, token := testutils.CreateTestUser(t, db, "alice")

	doRequest(t, app, "POST", "/social-links/", token,
		fiber.Map{"platform": "Instagram", "name": "alice.ig"})

	// Same platform in different casing still counts as a duplicate
	resp, _ := doRequest(t, app, "POST", "/social-links/", token,
		fiber.Map{"platform": "INSTAGRAM", "name": "alice.other"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestUpdateAndDeleteOwnership(t *testing.T) {
	app, db := setupApp(t)
	_, aliceToken := testutils.CreateTestUser(t, db, "alice")
	_, bobToken := testutils.CreateTestUser(t, db, "bob")

	_, result := doRequest(t, app, "POST", "/social-links/", aliceToken,
		fiber.Map{"platform": "twitter", "name": "alice.tw"})
	linkID := result["data"].(map[string]interface{})["ID"].(float64)
	path := "/social-links/" + strconv.Itoa(int(linkID))

	// Another user may not edit or remove the link
	resp, _ := doRequest(t, app, "PATCH", path, bobToken, fiber.Map{"name": "hijack"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	resp, _ = doRequest(t, app, "DELETE", path, bobToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// The owner may
	resp, result = doRequest(t, app, "PATCH", path, aliceToken, fiber.Map{"name": "alice.updated"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice.updated", result["data"].(map[string]interface{})["name"])

	resp, _ = doRequest(t, app, "DELETE", path, aliceToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	db.Model(&models.SocialLink{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
