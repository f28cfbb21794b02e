package testutils

import (
	"testing"

	"github.com/Nanokwok/StudyBuddy/config"
	"github.com/Nanokwok/StudyBuddy/database"
	"github.com/Nanokwok/StudyBuddy/middleware"
	"github.com/Nanokwok/StudyBuddy/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SetupTestDB wires config and an isolated in-memory SQLite database into the
// package globals that handlers read from.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:         "8000",
		DBName:       "test",
		JWTKey:       "test-secret",
		SaltRound:    4,
		MediaBaseURL: "http://localhost:8000/uploads",
		UploadDir:    t.TempDir(),
	}

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

// CreateTestUser inserts a user and returns it with a valid bearer token.
func CreateTestUser(t *testing.T, db *gorm.DB, username string) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), config.AppConfig.SaltRound)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Email)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return user, "Bearer " + token
}

// CreateTestCourse inserts a course with the given weekly slot.
func CreateTestCourse(t *testing.T, db *gorm.DB, code, title, dayOfWeek, timeOfDay string) models.Course {
	t.Helper()

	course := models.Course{
		Code:      code,
		Title:     title,
		Subject:   "Testing",
		DayOfWeek: dayOfWeek,
		TimeOfDay: timeOfDay,
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("failed to create test course: %v", err)
	}
	return course
}
