package handlers

import (
	"github.com/caowens/lifted-api/internal/auth"
	"github.com/caowens/lifted-api/internal/middleware"
	"github.com/caowens/lifted-api/internal/monitoring"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// Router wires the HTTP surface. Read routes carry optional auth so
// signed-in callers can widen their scope; mutating quote routes carry
// mandatory auth.
func Router(h *Handler, tokens *auth.TokenManager, logger *log.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(logger))
	router.Use(monitoring.HTTPMetrics())

	router.GET("/health", h.HealthCheck)
	router.GET("/metrics", monitoring.Handler())

	v1 := router.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	authRoutes.POST("/sign-up", h.SignUp)
	authRoutes.POST("/sign-in", h.SignIn)

	quoteRoutes := v1.Group("/quotes")
	quoteRoutes.GET("", middleware.OptionalAuth(tokens), h.ListQuotes)
	quoteRoutes.GET("/random", middleware.OptionalAuth(tokens), h.RandomQuote)
	quoteRoutes.GET("/:id", middleware.OptionalAuth(tokens), h.GetQuote)
	quoteRoutes.POST("", middleware.RequireAuth(tokens), h.CreateQuote)
	quoteRoutes.PUT("/:id", middleware.RequireAuth(tokens), h.EditQuote)
	quoteRoutes.DELETE("/:id", middleware.RequireAuth(tokens), h.DeleteQuote)

	return router
}
