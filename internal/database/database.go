package database

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Mithil2603/machinery-backend/internal/models"
)

// Connect opens a GORM connection to the MySQL database.
// TranslateError lets repositories match gorm.ErrDuplicatedKey
// instead of driver-specific error codes.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderDetail{},
		&models.Feedback{},
	)
}
