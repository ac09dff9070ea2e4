package config

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "task-board.com/task-board/internal/models"
)

// NewDatabase opens the store named by the connection URL. A postgres:// URL
// gets the postgres driver; anything else is treated as a sqlite file path.
func NewDatabase(databaseURL string) *gorm.DB {
	var dialector gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(databaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(&model.Task{}, &model.Applicant{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
