package reputation

import (
	"github.com/gin-gonic/gin"
	"github.com/pulse-social/pulse/config"
	mw "github.com/pulse-social/pulse/internal/middleware"
	"gorm.io/gorm"
)

func RegisterReputationRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewReputationRepository(db)
	controller := NewReputationController(repo, appConfig)

	authRoutes := router.Group("/users")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		authRoutes.POST("/:id/rate", controller.RateUser)
		authRoutes.POST("/:id/flag", controller.FlagUser)
	}
}
