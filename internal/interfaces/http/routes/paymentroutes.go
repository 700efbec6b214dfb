package routes

import (
	"github.com/gin-gonic/gin"

	"paybridge/internal/interfaces/http/handlers"
	"paybridge/internal/interfaces/http/middleware"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler *handlers.PaymentHandler
	RateLimiter    *middleware.RateLimiter
}

// SetupPaymentRoutes configures payment routes. The callback endpoint is
// unauthenticated and never rate limited; the gateway identifies itself only
// through the transaction id it presents, which is verified against the
// gateway API.
func SetupPaymentRoutes(engine *gin.Engine, cfg *PaymentRouteConfig) {
	payments := engine.Group("/payments")
	{
		payments.POST("/callback", cfg.PaymentHandler.HandleCallback)

		admin := payments.Group("")
		if cfg.RateLimiter != nil {
			admin.Use(cfg.RateLimiter.Limit())
		}
		{
			admin.POST("/link", cfg.PaymentHandler.CreatePaymentLink)
			admin.POST("/:order_id/capture", cfg.PaymentHandler.Capture)
			admin.POST("/:order_id/cancel", cfg.PaymentHandler.Cancel)
			admin.POST("/:order_id/refund", cfg.PaymentHandler.Refund)
		}
	}
}
