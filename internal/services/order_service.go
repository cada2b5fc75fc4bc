package services

import (
	"github.com/Mithil2603/machinery-backend/internal/models"
	"github.com/Mithil2603/machinery-backend/internal/repositories"
	"github.com/Mithil2603/machinery-backend/internal/services/dto"
	"github.com/Mithil2603/machinery-backend/pkg/apperrors"
)

type OrderService interface {
	Place(req *dto.PlaceOrderRequest) (uint, error)
	Get(orderID uint) (*models.Order, error)
	ListByUser(userID uint) ([]models.Order, error)
}

type OrderServiceImpl struct {
	orderRepo repositories.OrderRepository
}

func NewOrderService(orderRepo repositories.OrderRepository) OrderService {
	return &OrderServiceImpl{orderRepo: orderRepo}
}

// Place validates the request and writes the order atomically. Everything
// beyond input validation is the repository's transaction.
func (s *OrderServiceImpl) Place(req *dto.PlaceOrderRequest) (uint, error) {
	if req.UserID == 0 || len(req.OrderDetails) == 0 {
		return 0, apperrors.ErrEmptyOrder
	}

	details := make([]models.OrderDetail, 0, len(req.OrderDetails))
	for _, item := range req.OrderDetails {
		details = append(details, models.OrderDetail{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			NoOfEnds:    item.NoOfEnds,
			CreelType:   item.CreelType,
			CreelPitch:  item.CreelPitch,
			BobinLength: item.BobinLength,
		})
	}

	orderID, err := s.orderRepo.Place(req.UserID, details)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return orderID, nil
}

func (s *OrderServiceImpl) Get(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return order, nil
}

func (s *OrderServiceImpl) ListByUser(userID uint) ([]models.Order, error) {
	orders, err := s.orderRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return orders, nil
}
