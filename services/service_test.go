package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cms-backend/models"
)

// setupTestDB opens an isolated in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Enrollment{},
		&models.Result{},
	)
	require.NoError(t, err, "Failed to migrate test schema")

	return db
}

func newTestUserService(db *gorm.DB) *UserService {
	return NewUserService(db, bcrypt.MinCost)
}

func createStudent(t *testing.T, db *gorm.DB, email, username string) *models.User {
	t.Helper()
	user := models.User{Email: email, Username: username, Password: "irrelevant-hash"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createCourse(t *testing.T, db *gorm.DB, code, title string, capacity int) *models.Course {
	t.Helper()
	course := models.Course{Code: code, Title: title, Credits: 3, Capacity: capacity, Active: true}
	require.NoError(t, db.Create(&course).Error)
	return &course
}
