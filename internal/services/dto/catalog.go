package dto

import "gorm.io/datatypes"

type CreateCategoryRequest struct {
	CategoryName        string         `json:"category_name" validate:"required"`
	CategoryDescription string         `json:"category_description"`
	CategoryImg         datatypes.JSON `json:"category_img"`
}

type CreateProductRequest struct {
	CategoryID         uint           `json:"category_id" validate:"required"`
	ProductName        string         `json:"product_name" validate:"required"`
	ProductDescription datatypes.JSON `json:"product_description"`
	ProductImg         datatypes.JSON `json:"product_img"`
}

// UpdateProductRequest carries a partial update; nil fields stay untouched.
type UpdateProductRequest struct {
	CategoryID         *uint           `json:"category_id"`
	ProductName        *string         `json:"product_name"`
	ProductDescription *datatypes.JSON `json:"product_description"`
	ProductImg         *datatypes.JSON `json:"product_img"`
}
