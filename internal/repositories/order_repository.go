package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Mithil2603/machinery-backend/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	// Place writes the order header and every detail row as one atomic
	// unit and returns the new order id.
	Place(userID uint, details []models.OrderDetail) (uint, error)
	FindByID(orderID uint) (*models.Order, error)
	FindByUser(userID uint) ([]models.Order, error)
}

type OrderRepositoryImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Place runs inside a store transaction: header insert, then one insert
// per detail row. Any failure rolls the whole order back; no partial
// order is ever observable.
func (r *OrderRepositoryImpl) Place(userID uint, details []models.OrderDetail) (uint, error) {
	var orderID uint

	err := r.db.Transaction(func(tx *gorm.DB) error {
		order := models.Order{UserID: userID}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range details {
			details[i].OrderDetailID = 0
			details[i].OrderID = order.OrderID
			if err := tx.Create(&details[i]).Error; err != nil {
				return err
			}
		}

		orderID = order.OrderID
		return nil
	})
	if err != nil {
		return 0, err
	}

	return orderID, nil
}

func (r *OrderRepositoryImpl) FindByID(orderID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Details").First(&order, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Details").
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}
