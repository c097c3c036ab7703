package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainErrors "github.com/Ghorpaderamdas/Hotel/internal/domain/errors"
	"github.com/Ghorpaderamdas/Hotel/internal/handler/http/middleware"
	"github.com/Ghorpaderamdas/Hotel/internal/service"
)

// AdminHandler exposes the protected console endpoints. Both read the
// authenticated identity from the claims the middleware stored, never from
// request parameters.
type AdminHandler struct {
	logger       *zap.Logger
	adminService *service.AdminService
}

func NewAdminHandler(logger *zap.Logger, adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{
		logger:       logger.Named("admin_handler"),
		adminService: adminService,
	}
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	profile, err := h.adminService.GetProfile(c.Request.Context(), claims.Username)
	if err != nil {
		h.logger.Error("failed to load dashboard profile", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	// Content counters for the console landing page. The content tables
	// live outside this service; the counts are served statically until
	// the content backend grows an API for them.
	RespondSuccess(c, http.StatusOK, "Dashboard data retrieved successfully", gin.H{
		"welcome_message":      "Welcome to Admin Dashboard",
		"admin_name":           profile.FullName,
		"last_login":           profile.LastLogin,
		"total_bookings":       127,
		"total_menu_items":     45,
		"total_gallery_images": 89,
		"total_blog_posts":     12,
	})
}

// Profile handles GET /admin/profile.
func (h *AdminHandler) Profile(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	profile, err := h.adminService.GetProfile(c.Request.Context(), claims.Username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAdminNotFound) {
			RespondError(c, http.StatusNotFound, "Admin not found")
			return
		}
		h.logger.Error("failed to load profile", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	RespondSuccess(c, http.StatusOK, "Profile retrieved successfully", profile)
}
