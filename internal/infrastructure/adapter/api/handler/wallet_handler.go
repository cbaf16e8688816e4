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

const defaultPageSize = 50

// WalletHandler handles the caller's wallet endpoints
type WalletHandler struct {
	walletUseCase usecase.WalletUseCase
	logger        coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(walletUseCase usecase.WalletUseCase, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		walletUseCase: walletUseCase,
		logger:        logger,
	}
}

// GetBalance handles GET /wallet/balance
func (h *WalletHandler) GetBalance(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	balance, err := h.walletUseCase.GetBalance(c.Request.Context(), p.UserID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(balance))
}

// ApplyDelta handles POST /wallet/transactions. Customers may only debit
// their own wallet with purchases and contributions; credits need an operator.
func (h *WalletHandler) ApplyDelta(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.ApplyDeltaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}
	target, allowed := deltaTarget(p, req)
	if !allowed {
		h.logger.Warn("Wallet change refused for customer", map[string]any{
			"user_id": p.UserID,
			"target":  target,
			"type":    req.Type,
			"amount":  *req.Amount,
		})
		respondError(c, h.logger, domainerr.ErrOperatorOnly)
		return
	}

	result, err := h.walletUseCase.ApplyDelta(c.Request.Context(), usecase.ApplyDeltaRequest{
		UserID:      target,
		Amount:      *req.Amount,
		Type:        req.Type,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ApplyDeltaResponse{
		Balance:     result.Balance,
		Formatted:   entity.FormatRupees(result.Balance),
		Transaction: dto.NewTransactionResponse(result.Transaction),
	})
}

// ListTransactions handles GET /wallet/transactions
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var query dto.ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}
	if query.Limit == 0 {
		query.Limit = defaultPageSize
	}

	rows, err := h.walletUseCase.ListTransactions(c.Request.Context(), p.UserID, query.Limit, query.Offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionList(rows))
}

// Reconcile handles GET /wallet/reconcile
func (h *WalletHandler) Reconcile(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	report, err := h.walletUseCase.Reconcile(c.Request.Context(), p.UserID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReconcileResponse(report))
}

// deltaTarget resolves whose wallet req changes and whether p may do it.
// Operators may change any wallet in either direction; customers only debit
// their own.
func deltaTarget(p entity.Principal, req dto.ApplyDeltaRequest) (uint64, bool) {
	target := p.UserID
	if req.UserID != nil {
		target = *req.UserID
	}
	if p.IsOperator() {
		return target, true
	}
	return target, target == p.UserID && entity.TransactionType(req.Type).IsSelfServiceDebit(*req.Amount)
}
