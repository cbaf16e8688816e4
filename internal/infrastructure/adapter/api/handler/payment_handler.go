package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/domain/port/usecase"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/api/dto"
)

// PaymentHandler issues UPI payment intents for group contributions
type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
		logger:         logger,
	}
}

// GenerateIntent handles POST /groups/:groupId/payment-intents
func (h *PaymentHandler) GenerateIntent(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	groupID, ok := idParam(c, "groupId", domainerr.ErrInvalidGroupID)
	if !ok {
		return
	}

	var req dto.GenerateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	intent, err := h.paymentUseCase.GenerateIntent(c.Request.Context(), usecase.GenerateIntentRequest{
		GroupID: groupID,
		ItemID:  req.ItemID,
		UserID:  p.UserID,
		Amount:  req.Amount,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPaymentIntentResponse(intent))
}
