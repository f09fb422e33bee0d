package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the engine with the shared middleware and API routes.
// X-Forwarded-For is only honoured from trustedProxies; nil trusts none, so
// client IPs come from the connection itself.
func NewRouter(handler *Handler, limiter *RateLimiter, logger *logrus.Logger, origins, trustedProxies []string) (*gin.Engine, error) {
	router := gin.New()
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	router.Use(gin.Recovery(), RequestLogger(logger), CORS(origins))
	SetupRoutes(router, handler, limiter)
	return router, nil
}

func SetupRoutes(router *gin.Engine, handler *Handler, limiter *RateLimiter) {
	api := router.Group("/api")
	{
		api.GET("/health", handler.Health)
		api.GET("/properties", handler.SearchProperties)
		api.GET("/properties/map", handler.GetPropertyMap)
		api.GET("/properties/:id", handler.GetProperty)
		api.GET("/properties/:id/inquiries", handler.GetPropertyInquiries)
		api.POST("/contact", limiter.Limit(), handler.CreateInquiry)
	}
}
