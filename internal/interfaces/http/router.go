// Package http wires the HTTP surface: handlers, middleware and routes.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"paybridge/internal/application/payment/services"
	"paybridge/internal/application/payment/usecases"
	ordervo "paybridge/internal/domain/order/valueobjects"
	"paybridge/internal/infrastructure/config"
	"paybridge/internal/infrastructure/email"
	"paybridge/internal/infrastructure/freepay"
	"paybridge/internal/infrastructure/lock"
	"paybridge/internal/infrastructure/repository"
	"paybridge/internal/interfaces/http/handlers"
	"paybridge/internal/interfaces/http/middleware"
	"paybridge/internal/interfaces/http/routes"
	"paybridge/internal/shared/db"
	"paybridge/internal/shared/logger"
)

// Router assembles the HTTP engine with all dependencies wired.
type Router struct {
	engine         *gin.Engine
	paymentHandler *handlers.PaymentHandler
	rateLimiter    *middleware.RateLimiter
}

func NewRouter(
	gormDB *gorm.DB,
	redisClient *redis.Client,
	cfg *config.Config,
	log logger.Interface,
) *Router {
	txManager := db.NewTransactionManager(gormDB)

	orderRepo := repository.NewOrderRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)
	txnRepo := repository.NewTransactionRepository(gormDB)

	gatewayClient := freepay.NewClient(cfg.Gateway.APIBaseURL, cfg.Gateway.APIKey, log.Named("freepay"))
	adapter := services.NewTransactionAdapter(orderRepo, paymentRepo, txnRepo, gatewayClient, log.Named("adapter"))
	locker := lock.NewRedisOrderLocker(redisClient, log.Named("lock"))
	confirmation := email.NewSMTPConfirmationSender(cfg.Email)
	statusTable := ordervo.NewStateStatusTable(cfg.OrderStatuses)

	handleCallbackUC := usecases.NewHandleCallbackUseCase(
		orderRepo, paymentRepo, adapter, gatewayClient,
		confirmation, locker, txManager, statusTable,
		log.Named("callback"),
	)
	createLinkUC := usecases.NewCreatePaymentLinkUseCase(
		orderRepo, gatewayClient,
		usecases.LinkConfig{
			PublicBaseURL: cfg.Gateway.PublicBaseURL,
			DefaultLocale: cfg.Gateway.Locale,
		},
		log.Named("link"),
	)
	captureUC := usecases.NewCapturePaymentUseCase(orderRepo, paymentRepo, adapter, locker, log.Named("capture"))
	cancelUC := usecases.NewCancelPaymentUseCase(orderRepo, paymentRepo, adapter, locker, log.Named("cancel"))
	refundUC := usecases.NewRefundPaymentUseCase(orderRepo, paymentRepo, adapter, locker, log.Named("refund"))

	paymentHandler := handlers.NewPaymentHandler(
		handleCallbackUC, createLinkUC, captureUC, cancelUC, refundUC,
		log.Named("handler"),
	)

	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	return &Router{
		engine:         engine,
		paymentHandler: paymentHandler,
		rateLimiter:    middleware.NewRateLimiter(redisClient, 60, time.Minute),
	}
}

// SetupRoutes registers middleware and all route groups.
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(log))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupPaymentRoutes(r.engine, &routes.PaymentRouteConfig{
		PaymentHandler: r.paymentHandler,
		RateLimiter:    r.rateLimiter,
	})
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
