package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/estudaplan/estudaplan-api/models"
)

var Database *gorm.DB

// Connect opens the user-registry database: postgres when DB_URL is
// set, a local sqlite file otherwise. Plan data itself never lives
// here; the registry only maps token subjects to data directories.
func Connect() error {
	var dialector gorm.Dialector
	if Env.DBURL != "" {
		dialector = postgres.Open(Env.DBURL)
	} else {
		dialector = sqlite.Open(Env.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return err
	}

	Database = db
	return nil
}
