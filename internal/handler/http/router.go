package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Ghorpaderamdas/Hotel/internal/config"
	"github.com/Ghorpaderamdas/Hotel/internal/handler/http/middleware"
	"github.com/Ghorpaderamdas/Hotel/internal/service"
)

// NewRouter assembles the gin engine: public auth routes plus the protected
// console routes behind the bearer-token middleware.
func NewRouter(
	logger *zap.Logger,
	cfg *config.Config,
	authService *service.AuthService,
	adminService *service.AdminService,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))

	authHandler := NewAuthHandler(logger, authService)
	adminHandler := NewAdminHandler(logger, adminService)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)
		auth.GET("/validate-reset-token", authHandler.ValidateResetToken)
		auth.POST("/logout", authHandler.Logout)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authService, logger))
	{
		admin.GET("/dashboard", adminHandler.Dashboard)
		admin.GET("/profile", adminHandler.Profile)
	}

	return router
}
