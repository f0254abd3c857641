package services

import (
	"path/filepath"
	"testing"
	"time"

	"bookerino-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway SQLite database with the full schema. Each
// test gets its own file so t.Parallel is safe.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bookerino.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Room{},
		&models.Booking{},
		&models.Review{},
		&models.Meal{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func mustCreateRoom(t *testing.T, svc *RoomService, number string, price float64, capacity int) models.Room {
	t.Helper()

	room, err := svc.Create(models.Room{
		RoomNumber: number,
		Type:       "Double",
		Price:      price,
		Capacity:   capacity,
	})
	if err != nil {
		t.Fatalf("create room %s: %v", number, err)
	}
	return room
}

func date(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %s: %v", value, err)
	}
	return parsed
}
