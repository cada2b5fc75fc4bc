package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mithil2603/machinery-backend/internal/auth"
	"github.com/Mithil2603/machinery-backend/internal/middleware"
	"github.com/Mithil2603/machinery-backend/internal/services"
	"github.com/Mithil2603/machinery-backend/internal/services/dto"
	"github.com/Mithil2603/machinery-backend/pkg/apperrors"
)

type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
	tokens         *auth.TokenManager
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService, tokens *auth.TokenManager) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
		tokens:         tokens,
	}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Public catalog reads
	rg.GET("/categories", h.ListCategories)
	rg.GET("/products", h.ListProducts)
	rg.GET("/products/:productId", h.GetProduct)
	rg.GET("/products/category/:categoryId", h.ListProductsByCategory)

	// Owner-only catalog writes
	admin := rg.Group("")
	admin.Use(middleware.SessionMiddleware(h.tokens))
	admin.Use(middleware.OwnerMiddleware())
	{
		admin.POST("/categories", h.AddCategory)
		admin.POST("/products", h.AddProduct)
		admin.PATCH("/products/:productId", h.UpdateProduct)
	}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) AddCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.catalogService.AddCategory(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Category added successfully",
		"categoryId": category.CategoryID,
	})
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, err := ParseParamUint(c, "productId")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	product, err := h.catalogService.GetProduct(productID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) ListProductsByCategory(c *gin.Context) {
	categoryID, err := ParseParamUint(c, "categoryId")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	products, err := h.catalogService.ListProductsByCategory(categoryID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) AddProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	product, err := h.catalogService.AddProduct(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Product added successfully",
		"productId": product.ProductID,
	})
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	productID, err := ParseParamUint(c, "productId")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.UpdateProductRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.catalogService.UpdateProduct(productID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}
