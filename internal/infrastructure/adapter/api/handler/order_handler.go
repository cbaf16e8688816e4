package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vyronamart/group-ledger/internal/domain/entity"
	domainerr "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/domain/port/usecase"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/api/dto"
)

// OrderHandler handles order placement and delivery status updates
type OrderHandler struct {
	orderUseCase usecase.OrderUseCase
	logger       coreport.Logger
}

// NewOrderHandler creates a new order handler instance
func NewOrderHandler(orderUseCase usecase.OrderUseCase, logger coreport.Logger) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
		logger:       logger,
	}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	order, err := h.orderUseCase.CreateOrder(c.Request.Context(), p, usecase.CreateOrderRequest{
		GroupID: req.GroupID,
		Total:   req.Total,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewOrderResponse(order))
}

// GetOrder handles GET /orders/:orderId
func (h *OrderHandler) GetOrder(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	orderID, ok := idParam(c, "orderId", domainerr.ErrInvalidOrder)
	if !ok {
		return
	}

	details, err := h.orderUseCase.GetOrder(c.Request.Context(), p, orderID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderDetailsResponse(details))
}

// AdvanceStatus handles POST /orders/:orderId/status. Fulfilment is a
// back-office step, so only operators may move an order.
func (h *OrderHandler) AdvanceStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if !p.IsOperator() {
		h.logger.Warn("Order status change refused for customer", map[string]any{
			"user_id":  p.UserID,
			"order_id": c.Param("orderId"),
		})
		respondError(c, h.logger, domainerr.ErrOperatorOnly)
		return
	}

	orderID, ok := idParam(c, "orderId", domainerr.ErrInvalidOrder)
	if !ok {
		return
	}

	var req dto.AdvanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}
	target, err := entity.ParseOrderStatus(req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	order, err := h.orderUseCase.AdvanceStatus(c.Request.Context(), orderID, target)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}
