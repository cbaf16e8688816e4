package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/domain/port/external"
	"github.com/vyronamart/group-ledger/internal/domain/usecase/group"
	"github.com/vyronamart/group-ledger/internal/domain/usecase/order"
	"github.com/vyronamart/group-ledger/internal/domain/usecase/payment"
	"github.com/vyronamart/group-ledger/internal/domain/usecase/wallet"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/api/validation"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/auth"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/cache"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/clock"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/database"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/email"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/logger"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/metrics"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/qr"
	"github.com/vyronamart/group-ledger/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(cfg.Logger, map[string]any{
		"service": "group-ledger",
		"env":     cfg.Environment,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := clock.NewSystemClock()

	// Metrics. The Prometheus adapter doubles as the database observer and
	// the HTTP recorder; when disabled, business counters go to a no-op.
	var (
		appMetrics  coreport.Metrics = metrics.NewNoop()
		prom        *metrics.Prometheus
		dbObserver  database.Observer
		recorder    middleware.HTTPRecorder
		metricsHTTP http.Handler
	)
	if cfg.Metrics.Enabled {
		prom = metrics.NewPrometheus()
		appMetrics = prom
		dbObserver = prom
		recorder = prom
		metricsHTTP = prom.Handler()
	}

	// Database
	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp, dbObserver)
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	if _, err := dbManager.Connect(startupCtx); err != nil {
		cancelStartup()
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.Migrate(startupCtx); err != nil {
		cancelStartup()
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	uow := dbManager.CreateUnitOfWork()

	// Group listing cache. Redis is optional; the service reads through to
	// the database when it is absent.
	var groupCache external.GroupListCache
	var redisCache *cache.RedisGroupCache
	if cfg.Cache.Enabled {
		redisCache, err = cache.NewRedisGroupCache(startupCtx, cfg.Cache.RedisURL, cfg.Cache.GroupListTTL, appLogger)
		if err != nil {
			appLogger.Warn("Redis unavailable, group listing cache disabled", map[string]any{"error": err.Error()})
			redisCache = nil
		} else {
			groupCache = redisCache
			defer func() { _ = redisCache.Close() }()
		}
	}
	cancelStartup()

	// Email
	var sender external.EmailSender
	if cfg.Email.Enabled {
		sender = email.NewBrevoClient(cfg.Email, appLogger)
	} else {
		sender = email.NewDisabledSender(appLogger)
	}

	templates, err := order.NewTemplates()
	if err != nil {
		appLogger.Error("Failed to parse email templates", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Use cases
	groupService := group.NewGroupService(uow, groupCache, tp, appLogger, appMetrics, group.Options{
		RoomCodeLength:      cfg.Group.RoomCodeLength,
		MaxRoomCodeAttempts: cfg.Group.MaxRoomCodeAttempts,
	})
	walletService := wallet.NewWalletService(uow, tp, appLogger, appMetrics)
	paymentService := payment.NewPaymentService(uow, qr.NewRenderer(), tp, appLogger, appMetrics, payment.Options{
		Payee: entity.UPIPayee{
			VPA:      cfg.Payment.PayeeVPA,
			Name:     cfg.Payment.PayeeName,
			Currency: cfg.Payment.Currency,
		},
		TTL:    cfg.Payment.IntentTTL,
		QRSize: cfg.Payment.QRSize,
	})
	orderService := order.NewOrderService(uow, sender, templates, tp, appLogger, appMetrics)

	// HTTP
	if err := validation.RegisterRules(); err != nil {
		appLogger.Error("Failed to register validation rules", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, tp)

	checks := map[string]handler.Pinger{"database": dbManager}
	if redisCache != nil {
		checks["redis"] = redisCache
	}

	handlers := routes.Handlers{
		Group:   handler.NewGroupHandler(groupService, appLogger),
		Wallet:  handler.NewWalletHandler(walletService, appLogger),
		Payment: handler.NewPaymentHandler(paymentService, appLogger),
		Order:   handler.NewOrderHandler(orderService, appLogger),
		Health:  handler.NewHealthHandler(checks, tp),
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, recorder)
	routes.SetupRoutes(router, handlers, middleware.Auth(jwtManager, appLogger), cfg.Metrics.Path, metricsHTTP)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":    server.Addr,
			"env":     cfg.Environment,
			"metrics": cfg.Metrics.Enabled,
			"cache":   groupCache != nil,
			"email":   cfg.Email.Enabled,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		appLogger.Info("Shutting down server", map[string]any{"signal": sig.String()})
	case err := <-serverErr:
		appLogger.Error("Server failed", map[string]any{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	// Let in-flight status emails finish before the database closes
	orderService.Wait()

	appLogger.Info("Server exited", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missing = append(missing, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missing = append(missing, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}

	if cfg.Auth.JWTSecret == "" {
		missing = append(missing, "auth.jwtSecret (or VM_AUTH_JWT_SECRET)")
	}
	if cfg.Payment.PayeeVPA == "" {
		missing = append(missing, "payment.payeeVPA (or VM_PAYMENT_PAYEE_VPA)")
	}
	if cfg.Email.Enabled {
		if cfg.Email.APIKey == "" {
			missing = append(missing, "email.apiKey (or VM_EMAIL_API_KEY)")
		}
		if cfg.Email.SenderEmail == "" {
			missing = append(missing, "email.senderEmail (or VM_EMAIL_SENDER)")
		}
	}
	if cfg.Cache.Enabled && cfg.Cache.RedisURL == "" {
		missing = append(missing, "cache.redisURL (or VM_CACHE_REDIS_URL)")
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == "" {
		missing = append(missing, "metrics.path")
	}
	if cfg.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}

	switch cfg.Environment {
	case "":
		missing = append(missing, "environment")
	case config.Development, config.Production, config.Test:
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	if err := database.FromAppConfig(cfg).Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if cfg.IsProduction() {
		var warnings []string
		if cfg.Database.Driver == database.DriverPostgres {
			switch strings.ToLower(cfg.Database.SSLMode) {
			case "require", "verify-ca", "verify-full":
			default:
				warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca' or 'verify-full' in production")
			}
		}
		if len(cfg.Auth.JWTSecret) < 32 {
			warnings = append(warnings, "auth.jwtSecret is shorter than 32 bytes")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
