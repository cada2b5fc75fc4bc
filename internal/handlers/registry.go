package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	OrderHandler    *OrderHandler
	CatalogHandler  *CatalogHandler
	FeedbackHandler *FeedbackHandler
	InquiryHandler  *InquiryHandler
}
