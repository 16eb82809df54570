package group

import (
	"github.com/gin-gonic/gin"
	"github.com/pulse-social/pulse/config"
	mw "github.com/pulse-social/pulse/internal/middleware"
	"github.com/pulse-social/pulse/internal/sport"
	"gorm.io/gorm"
)

// RegisterGroupRoutes sets up all activity-related routes.
func RegisterGroupRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	groupRepo := NewGroupRepository(db)
	sportRepo := sport.NewSportRepository(db)
	groupController := NewGroupController(groupRepo, sportRepo, appConfig)

	// Public routes
	router.GET("/groups", groupController.ListGroups)
	router.GET("/groups/:id", groupController.GetGroupByID)

	// Authenticated user routes
	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		authRoutes.POST("/groups", groupController.CreateGroup)
		authRoutes.POST("/groups/:id/join", groupController.JoinGroup)
	}
}
