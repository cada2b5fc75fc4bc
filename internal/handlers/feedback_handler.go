package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mithil2603/machinery-backend/internal/auth"
	"github.com/Mithil2603/machinery-backend/internal/middleware"
	"github.com/Mithil2603/machinery-backend/internal/services"
	"github.com/Mithil2603/machinery-backend/internal/services/dto"
	"github.com/Mithil2603/machinery-backend/pkg/apperrors"
)

type FeedbackHandler struct {
	*BaseHandler
	feedbackService services.FeedbackService
	tokens          *auth.TokenManager
}

func NewFeedbackHandler(base *BaseHandler, feedbackService services.FeedbackService, tokens *auth.TokenManager) *FeedbackHandler {
	return &FeedbackHandler{
		BaseHandler:     base,
		feedbackService: feedbackService,
		tokens:          tokens,
	}
}

func (h *FeedbackHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products/:productId/feedback", h.ListFeedback)

	protected := rg.Group("")
	protected.Use(middleware.SessionMiddleware(h.tokens))
	protected.POST("/products/:productId/feedback", h.AddFeedback)
}

func (h *FeedbackHandler) AddFeedback(c *gin.Context) {
	productID, err := ParseParamUint(c, "productId")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	userID, ok := h.SessionUserID(c)
	if !ok {
		return
	}

	var req dto.FeedbackRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	feedback, err := h.feedbackService.AddFeedback(productID, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Feedback submitted successfully",
		"feedbackId": feedback.FeedbackID,
	})
}

func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	productID, err := ParseParamUint(c, "productId")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	feedback, err := h.feedbackService.ListFeedback(productID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}
