package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/kifvxnorg/sky-pool-restaurant/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

const maxConnectAttempts = 5

// Connect opens the database described by cfg, retrying with
// exponential backoff while the store comes up, and configures the
// connection pool on success.
func Connect(cfg DatabaseConfig) (*gorm.DB, error) {
	driver := strings.ToLower(cfg.Driver)
	switch driver {
	case "postgres", "postgresql", "sqlite", "":
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
	}

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		db, err = open(driver, cfg)
		if err == nil {
			var sqlDB *sql.DB
			if sqlDB, err = db.DB(); err == nil {
				if err = sqlDB.Ping(); err == nil {
					configureConnectionPool(sqlDB)
					log.WithFields(logrus.Fields{
						"db_driver": driver,
						"attempt":   attempt,
					}).Info("Database initialized successfully")
					return db, nil
				}
			}
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		if attempt < maxConnectAttempts {
			// 1s, 2s, 4s, 8s
			delay := time.Duration(1<<(attempt-1)) * time.Second
			log.WithField("delay", delay).Info("Retrying database connection")
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxConnectAttempts, err)
}

func open(driver string, cfg DatabaseConfig) (*gorm.DB, error) {
	switch driver {
	case "postgres", "postgresql":
		log.WithField("dsn_host", cfg.Host).Debug("Connecting to PostgreSQL")
		return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	case "sqlite", "":
		log.WithField("db_path", cfg.Path).Debug("Connecting to SQLite")
		return gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", driver)
	}
}

// Migrate creates or updates the tables for all four record kinds
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.MenuItem{},
		&models.Reservation{},
		&models.Review{},
		&models.Message{},
	)
}

// configureConnectionPool sets up connection pool parameters
func configureConnectionPool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.WithFields(logrus.Fields{
		"max_open_conns":    25,
		"max_idle_conns":    5,
		"conn_max_lifetime": "5m",
	}).Debug("Connection pool configured")
}
