package dto

type FeedbackRequest struct {
	FeedbackText   string `json:"feedback_text" validate:"required"`
	FeedbackRating int    `json:"feedback_rating" validate:"required,min=1,max=5"`
}

type InquiryRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Inquiry string `json:"inquiry" validate:"required"`
}
