package services

import (
	"github.com/Mithil2603/machinery-backend/internal/models"
	"github.com/Mithil2603/machinery-backend/internal/repositories"
	"github.com/Mithil2603/machinery-backend/internal/services/dto"
	"github.com/Mithil2603/machinery-backend/pkg/apperrors"
)

type FeedbackService interface {
	AddFeedback(productID, userID uint, req *dto.FeedbackRequest) (*models.Feedback, error)
	ListFeedback(productID uint) ([]models.Feedback, error)
}

type FeedbackServiceImpl struct {
	feedbackRepo repositories.FeedbackRepository
	catalogRepo  repositories.CatalogRepository
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepository,
	catalogRepo repositories.CatalogRepository,
) FeedbackService {
	return &FeedbackServiceImpl{
		feedbackRepo: feedbackRepo,
		catalogRepo:  catalogRepo,
	}
}

func (s *FeedbackServiceImpl) AddFeedback(productID, userID uint, req *dto.FeedbackRequest) (*models.Feedback, error) {
	if _, err := s.catalogRepo.FindProductByID(productID); err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	feedback := &models.Feedback{
		ProductID:      productID,
		UserID:         userID,
		FeedbackText:   req.FeedbackText,
		FeedbackRating: req.FeedbackRating,
	}
	if err := s.feedbackRepo.Create(feedback); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return feedback, nil
}

func (s *FeedbackServiceImpl) ListFeedback(productID uint) ([]models.Feedback, error) {
	feedback, err := s.feedbackRepo.FindByProduct(productID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return feedback, nil
}
