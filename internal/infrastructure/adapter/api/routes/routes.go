package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler mounted by the router
type Handlers struct {
	Group   *handler.GroupHandler
	Wallet  *handler.WalletHandler
	Payment *handler.PaymentHandler
	Order   *handler.OrderHandler
	Health  *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API. Everything under
// /api/v1 requires the auth middleware; health and metrics do not.
func SetupRoutes(router *gin.Engine, h Handlers, auth gin.HandlerFunc, metricsPath string, metricsHandler http.Handler) {
	router.GET("/healthz", h.Health.Liveness)
	router.GET("/readyz", h.Health.Readiness)
	if metricsHandler != nil {
		router.GET(metricsPath, gin.WrapH(metricsHandler))
	}
	router.NoRoute(middleware.NotFound())

	v1 := router.Group("/api/v1", auth)

	groups := v1.Group("/groups")
	{
		groups.POST("", h.Group.CreateGroup)
		groups.GET("", h.Group.ListGroups)
		groups.POST("/join", h.Group.JoinByRoomCode)
		groups.GET("/:groupId", h.Group.GetGroup)
		groups.POST("/:groupId/join", h.Group.JoinGroup)
		groups.POST("/:groupId/close", h.Group.CloseGroup)
		groups.GET("/:groupId/members", h.Group.ListMembers)
		groups.POST("/:groupId/cart", h.Group.AddCartItem)
		groups.GET("/:groupId/cart", h.Group.GetAggregateCart)
		groups.GET("/:groupId/cart/items", h.Group.ListCartItems)
		groups.POST("/:groupId/payment-intents", h.Payment.GenerateIntent)
	}

	wallet := v1.Group("/wallet")
	{
		wallet.GET("/balance", h.Wallet.GetBalance)
		wallet.POST("/transactions", h.Wallet.ApplyDelta)
		wallet.GET("/transactions", h.Wallet.ListTransactions)
		wallet.GET("/reconcile", h.Wallet.Reconcile)
	}

	orders := v1.Group("/orders")
	{
		orders.POST("", h.Order.CreateOrder)
		orders.GET("/:orderId", h.Order.GetOrder)
		orders.POST("/:orderId/status", h.Order.AdvanceStatus)
	}
}

// SetupMiddlewares configures global middlewares for the API. recorder may be nil.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, recorder middleware.HTTPRecorder) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	if recorder != nil {
		router.Use(middleware.Metrics(recorder))
	}
}
