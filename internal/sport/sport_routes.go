package sport

import (
	"github.com/gin-gonic/gin"
	"github.com/pulse-social/pulse/config"
	mw "github.com/pulse-social/pulse/internal/middleware"
	"github.com/pulse-social/pulse/pkg/rmiddleware"
	"gorm.io/gorm"
)

func RegisterSportRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	sportRepo := NewSportRepository(db)
	sportController := NewSportController(sportRepo, appConfig)

	publicSports := router.Group("/sports")
	{
		publicSports.GET("", sportController.GetAllSports)
	}

	adminSports := router.Group("/sports")
	adminSports.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	adminSports.Use(rmiddleware.AdminMiddleware())
	{
		adminSports.POST("", sportController.CreateSport)
		adminSports.POST("/recount", sportController.RecountGroupCounts)
	}
}
