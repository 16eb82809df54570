package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pulse-social/pulse/config"
	"github.com/pulse-social/pulse/internal/auth"
	"github.com/pulse-social/pulse/internal/group"
	"github.com/pulse-social/pulse/internal/moderation"
	"github.com/pulse-social/pulse/internal/reputation"
	"github.com/pulse-social/pulse/internal/sport"
	"gorm.io/gorm"
)

// SetupRoutes wires every domain package under the /api/v2 prefix.
func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	if appConfig.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api/v2")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Pulse API with embedded database",
			"timestamp": time.Now().Format(time.RFC3339),
			"database":  "Connected",
		})
	})

	auth.RegisterAuthRoutes(api, db, appConfig)
	sport.RegisterSportRoutes(api, db, appConfig)
	group.RegisterGroupRoutes(api, db, appConfig)
	reputation.RegisterReputationRoutes(api, db, appConfig)
	moderation.RegisterModerationRoutes(api, db, appConfig)

	return r
}
