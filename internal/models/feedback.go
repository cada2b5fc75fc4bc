package models

import "time"

// Feedback maps to feedback_tbl.
type Feedback struct {
	FeedbackID     uint      `gorm:"column:feedback_id;primaryKey;autoIncrement" json:"feedback_id"`
	ProductID      uint      `gorm:"column:product_id;not null;index" json:"product_id"`
	UserID         uint      `gorm:"column:user_id;not null" json:"user_id"`
	FeedbackText   string    `gorm:"column:feedback_text;not null" json:"feedback_text"`
	FeedbackRating int       `gorm:"column:feedback_rating;not null" json:"feedback_rating"`
	FeedbackDate   time.Time `gorm:"column:feedback_date;autoCreateTime" json:"feedback_date"`
}

func (Feedback) TableName() string {
	return "feedback_tbl"
}
