package models

import "time"

// Order maps to order_tbl. An order never exists without at least one
// detail row; creation of the header and its details is all-or-nothing.
type Order struct {
	OrderID   uint      `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"column:order_date" json:"order_date"`

	Details []OrderDetail `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE" json:"order_details"`
}

func (Order) TableName() string {
	return "order_tbl"
}

// OrderDetail maps to order_details_tbl.
type OrderDetail struct {
	OrderDetailID uint   `gorm:"column:order_detail_id;primaryKey;autoIncrement" json:"order_detail_id"`
	OrderID       uint   `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID     uint   `gorm:"column:product_id;not null" json:"product_id"`
	Quantity      int    `gorm:"column:quantity;not null" json:"quantity"`
	NoOfEnds      int    `gorm:"column:no_of_ends" json:"no_of_ends"`
	CreelType     string `gorm:"column:creel_type" json:"creel_type"`
	CreelPitch    int    `gorm:"column:creel_pitch" json:"creel_pitch"`
	BobinLength   int    `gorm:"column:bobin_length" json:"bobin_length"`

	Product *Product `json:"-"`
}

func (OrderDetail) TableName() string {
	return "order_details_tbl"
}
