package main

import (
	"log"

	"github.com/pulse-social/pulse/config"
	_ "github.com/pulse-social/pulse/docs"
	"github.com/pulse-social/pulse/internal/group"
	"github.com/pulse-social/pulse/internal/reputation"
	"github.com/pulse-social/pulse/internal/sport"
	"github.com/pulse-social/pulse/internal/user"
	"github.com/pulse-social/pulse/routes"
)

// @title Pulse REST API
// @version 2.1.0
// @description Backend for the Pulse sports-activity social app.
// @host localhost:4010
// @BasePath /api/v2
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{},
		&sport.Sport{},
		&group.Group{}, &group.GroupMember{},
		&reputation.UserRating{}, &reputation.FlagReport{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(config.DB, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
