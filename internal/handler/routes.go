package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/storefront-catalog-service/internal/service"
)

// Register mounts all public routes on the given engine.
// apiMiddleware wraps the catalog, order and payment endpoints; health probes are mounted outside it.
func Register(r *gin.Engine, logger zerolog.Logger, repo Pinger, productSvc service.ProductService, orderSvc service.OrderService, paymentSvc service.PaymentService, apiMiddleware ...gin.HandlerFunc) {
	h := NewHealthHandler(repo, logger)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}

		business := api.Group("", apiMiddleware...)
		NewProductHandler(productSvc).Register(business)
		NewOrderHandler(orderSvc).Register(business)
		NewPaymentHandler(paymentSvc).Register(business)
	}
}
