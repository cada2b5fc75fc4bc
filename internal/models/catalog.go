package models

import "gorm.io/datatypes"

// Category maps to category_tbl.
type Category struct {
	CategoryID          uint           `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	CategoryName        string         `gorm:"column:category_name;not null" json:"category_name"`
	CategoryDescription string         `gorm:"column:category_description" json:"category_description"`
	CategoryImg         datatypes.JSON `gorm:"column:category_img" json:"category_img"`
}

func (Category) TableName() string {
	return "category_tbl"
}

// Product maps to product_tbl. Description and images are stored as JSON
// documents, matching what the storefront sends.
type Product struct {
	ProductID          uint           `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	CategoryID         uint           `gorm:"column:category_id;not null;index" json:"category_id"`
	ProductName        string         `gorm:"column:product_name;not null" json:"product_name"`
	ProductDescription datatypes.JSON `gorm:"column:product_description" json:"product_description"`
	ProductImg         datatypes.JSON `gorm:"column:product_img" json:"product_img"`
}

func (Product) TableName() string {
	return "product_tbl"
}
