package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"warbler/config"
	"warbler/models"
)

// Connect opens the database. With no DB_HOST configured it falls back to a
// local SQLite file; otherwise it connects to PostgreSQL.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}

	var db *gorm.DB
	var err error

	if cfg.DBHost == "" {
		logrus.WithField("path", cfg.SQLitePath).Info("Connecting to SQLite database")
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath+"?_foreign_keys=on"), gormCfg)
	} else {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		logrus.WithField("host", cfg.DBHost).Info("Connecting to PostgreSQL database")
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Message{},
		&models.Follow{},
		&models.FollowRequest{},
		&models.LikedMessage{},
		&models.DirectMessage{},
	)
}
