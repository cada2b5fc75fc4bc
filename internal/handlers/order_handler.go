package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mithil2603/machinery-backend/internal/auth"
	"github.com/Mithil2603/machinery-backend/internal/middleware"
	"github.com/Mithil2603/machinery-backend/internal/models"
	"github.com/Mithil2603/machinery-backend/internal/services"
	"github.com/Mithil2603/machinery-backend/internal/services/dto"
	"github.com/Mithil2603/machinery-backend/pkg/apperrors"
)

type OrderHandler struct {
	*BaseHandler
	orderService services.OrderService
	tokens       *auth.TokenManager
}

func NewOrderHandler(base *BaseHandler, orderService services.OrderService, tokens *auth.TokenManager) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  base,
		orderService: orderService,
		tokens:       tokens,
	}
}

func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.Use(middleware.SessionMiddleware(h.tokens))
	{
		orders.POST("", h.PlaceOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/:orderId", h.GetOrder)
	}
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	sessionUserID, ok := h.SessionUserID(c)
	if !ok {
		return
	}
	// Ordinary users place orders for themselves only; owners may place
	// them on a customer's behalf.
	if req.UserID != sessionUserID && middleware.SessionRole(c) != string(models.UserTypeOwner) {
		apperrors.HandleError(c, apperrors.NewForbiddenError("Cannot place an order for another user"))
		return
	}

	orderID, err := h.orderService.Place(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"orderId": orderID,
	})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	sessionUserID, ok := h.SessionUserID(c)
	if !ok {
		return
	}

	orders, err := h.orderService.ListByUser(sessionUserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := ParseParamUint(c, "orderId")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	sessionUserID, ok := h.SessionUserID(c)
	if !ok {
		return
	}

	order, err := h.orderService.Get(orderID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if order.UserID != sessionUserID && middleware.SessionRole(c) != string(models.UserTypeOwner) {
		apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied"))
		return
	}

	c.JSON(http.StatusOK, order)
}
