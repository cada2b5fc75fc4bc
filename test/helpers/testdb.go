package helpers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/Mithil2603/machinery-backend/internal/database"
	"github.com/Mithil2603/machinery-backend/internal/models"
)

// NewTestDB opens an in-memory SQLite database with the full schema.
// Foreign keys are enabled so constraint violations behave like MySQL.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get *sql.DB: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

// SeedProduct inserts a product (and its category if missing) for tests.
func SeedProduct(t *testing.T, db *gorm.DB, name string) *models.Product {
	t.Helper()

	category := &models.Category{CategoryName: "Machinery"}
	if err := db.FirstOrCreate(category, models.Category{CategoryName: "Machinery"}).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	product := &models.Product{
		CategoryID:  category.CategoryID,
		ProductName: name,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to seed product %q: %v", name, err)
	}
	return product
}
