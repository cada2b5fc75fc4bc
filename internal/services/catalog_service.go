package services

import (
	"github.com/Mithil2603/machinery-backend/internal/models"
	"github.com/Mithil2603/machinery-backend/internal/repositories"
	"github.com/Mithil2603/machinery-backend/internal/services/dto"
	"github.com/Mithil2603/machinery-backend/pkg/apperrors"
)

type CatalogService interface {
	ListCategories() ([]models.Category, error)
	AddCategory(req *dto.CreateCategoryRequest) (*models.Category, error)

	ListProducts() ([]models.Product, error)
	GetProduct(productID uint) (*models.Product, error)
	ListProductsByCategory(categoryID uint) ([]models.Product, error)
	AddProduct(req *dto.CreateProductRequest) (*models.Product, error)
	UpdateProduct(productID uint, req *dto.UpdateProductRequest) error
}

type CatalogServiceImpl struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogService {
	return &CatalogServiceImpl{catalogRepo: catalogRepo}
}

func (s *CatalogServiceImpl) ListCategories() ([]models.Category, error) {
	categories, err := s.catalogRepo.FindCategories()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return categories, nil
}

func (s *CatalogServiceImpl) AddCategory(req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		CategoryName:        req.CategoryName,
		CategoryDescription: req.CategoryDescription,
		CategoryImg:         req.CategoryImg,
	}
	if err := s.catalogRepo.CreateCategory(category); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return category, nil
}

func (s *CatalogServiceImpl) ListProducts() ([]models.Product, error) {
	products, err := s.catalogRepo.FindProducts()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return products, nil
}

func (s *CatalogServiceImpl) GetProduct(productID uint) (*models.Product, error) {
	product, err := s.catalogRepo.FindProductByID(productID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return product, nil
}

func (s *CatalogServiceImpl) ListProductsByCategory(categoryID uint) ([]models.Product, error) {
	products, err := s.catalogRepo.FindProductsByCategory(categoryID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return products, nil
}

func (s *CatalogServiceImpl) AddProduct(req *dto.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		CategoryID:         req.CategoryID,
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		ProductImg:         req.ProductImg,
	}
	if err := s.catalogRepo.CreateProduct(product); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return product, nil
}

// UpdateProduct applies the non-nil fields only.
func (s *CatalogServiceImpl) UpdateProduct(productID uint, req *dto.UpdateProductRequest) error {
	fields := make(map[string]interface{})
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	if req.ProductName != nil {
		fields["product_name"] = *req.ProductName
	}
	if req.ProductDescription != nil {
		fields["product_description"] = *req.ProductDescription
	}
	if req.ProductImg != nil {
		fields["product_img"] = *req.ProductImg
	}

	if len(fields) == 0 {
		return apperrors.NewBadRequestError("No fields provided for update")
	}

	if err := s.catalogRepo.UpdateProduct(productID, fields); err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return apperrors.ErrProductNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}
