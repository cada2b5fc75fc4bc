package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Mithil2603/machinery-backend/internal/models"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

type CatalogRepository interface {
	// Categories
	FindCategories() ([]models.Category, error)
	CreateCategory(category *models.Category) error

	// Products
	FindProducts() ([]models.Product, error)
	FindProductByID(productID uint) (*models.Product, error)
	FindProductsByCategory(categoryID uint) ([]models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(productID uint, fields map[string]interface{}) error
}

type CatalogRepositoryImpl struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &CatalogRepositoryImpl{db: db}
}

func (r *CatalogRepositoryImpl) FindCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Find(&categories).Error
	return categories, err
}

func (r *CatalogRepositoryImpl) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CatalogRepositoryImpl) FindProducts() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Find(&products).Error
	return products, err
}

func (r *CatalogRepositoryImpl) FindProductByID(productID uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "product_id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *CatalogRepositoryImpl) FindProductsByCategory(categoryID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("category_id = ?", categoryID).Find(&products).Error
	return products, err
}

func (r *CatalogRepositoryImpl) CreateProduct(product *models.Product) error {
	return r.db.Create(product).Error
}

// UpdateProduct applies a partial update; fields holds column -> value.
func (r *CatalogRepositoryImpl) UpdateProduct(productID uint, fields map[string]interface{}) error {
	result := r.db.Model(&models.Product{}).
		Where("product_id = ?", productID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
