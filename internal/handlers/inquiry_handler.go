package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mithil2603/machinery-backend/internal/services"
	"github.com/Mithil2603/machinery-backend/internal/services/dto"
)

type InquiryHandler struct {
	*BaseHandler
	inquiryService services.InquiryService
}

func NewInquiryHandler(base *BaseHandler, inquiryService services.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		BaseHandler:    base,
		inquiryService: inquiryService,
	}
}

func (h *InquiryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/send-inquiry", h.SendInquiry)
}

func (h *InquiryHandler) SendInquiry(c *gin.Context) {
	var req dto.InquiryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.inquiryService.SendInquiry(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inquiry sent successfully"})
}
