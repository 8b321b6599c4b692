package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"warbler/auth"
	"warbler/config"
	"warbler/database"
	"warbler/handlers"
	"warbler/logger"
	"warbler/repositories"
	"warbler/routes"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	db, err := database.Connect(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to the database")
	}
	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("Failed to migrate the database")
	}

	userRepo := repositories.NewUserRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	followRepo := repositories.NewFollowRepository(db)
	likeRepo := repositories.NewLikeRepository(db)
	dmRepo := repositories.NewDirectMessageRepository(db)

	sessions := auth.NewManager(cfg.SessionKey)

	h, err := handlers.New(userRepo, messageRepo, followRepo, likeRepo, dmRepo, sessions)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize handlers")
	}

	router := routes.SetupRoutes(h)

	logrus.WithField("port", cfg.Port).Info("Server running")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
