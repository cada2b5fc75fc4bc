package repositories

import (
	"gorm.io/gorm"

	"github.com/Mithil2603/machinery-backend/internal/models"
)

type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	FindByProduct(productID uint) ([]models.Feedback, error)
}

type FeedbackRepositoryImpl struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &FeedbackRepositoryImpl{db: db}
}

func (r *FeedbackRepositoryImpl) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *FeedbackRepositoryImpl) FindByProduct(productID uint) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := r.db.Where("product_id = ?", productID).
		Order("feedback_date DESC").
		Find(&feedback).Error
	return feedback, err
}
