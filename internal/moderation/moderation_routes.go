package moderation

import (
	"github.com/gin-gonic/gin"
	"github.com/pulse-social/pulse/config"
	mw "github.com/pulse-social/pulse/internal/middleware"
	"github.com/pulse-social/pulse/pkg/rmiddleware"
	"gorm.io/gorm"
)

// RegisterModerationRoutes sets up the admin-only moderation routes.
func RegisterModerationRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewModerationRepository(db)
	controller := NewModerationController(repo, appConfig)

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.GET("/users", controller.ListUsers)
		adminRoutes.PUT("/users/:id/status", controller.UpdateUserStatus)
		adminRoutes.GET("/flags", controller.ListFlags)
		adminRoutes.PUT("/flags/:id/dismiss", controller.DismissFlag)
		adminRoutes.PUT("/flags/:id/suspend", controller.SuspendUser)
	}
}
