package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/kifvxnorg/sky-pool-restaurant/docs" // Import generated docs
	"github.com/kifvxnorg/sky-pool-restaurant/internal/config"
	"github.com/kifvxnorg/sky-pool-restaurant/internal/contract"
	"github.com/kifvxnorg/sky-pool-restaurant/internal/controllers"
	"github.com/kifvxnorg/sky-pool-restaurant/internal/database"
	"github.com/kifvxnorg/sky-pool-restaurant/internal/middleware"
	"github.com/kifvxnorg/sky-pool-restaurant/internal/services"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db                    *gorm.DB
	storage               services.Storage
	menuController        controllers.MenuController
	reservationController controllers.ReservationController
	reviewController      controllers.ReviewController
	contactController     controllers.ContactController
	configuration         *config.Config
)

// @title Sky Pool Restaurant API
// @version 1.0
// @description Menu, reviews, reservations and contact API for the Sky Pool rooftop restaurant
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection and seed data
	setupDatabase(configuration)

	// Initialize controllers
	menuController = controllers.NewMenuController(storage)
	reservationController = controllers.NewReservationController(storage)
	reviewController = controllers.NewReviewController(storage)
	contactController = controllers.NewContactController(storage)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf)
	return conf
}

// setupDatabase connects to the store, migrates the schema, builds the
// persistence gateway and runs the seeding routine
func setupDatabase(conf *config.Config) {
	var err error
	db, err = database.Connect(conf.Database())
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	storage = services.NewStorage(db)
	checkPanicErr(services.SeedDatabase(storage))
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	setupRoutes(router)

	return router
}

// setupRoutes registers every operation from the contract registry
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// API routes; gin shares the registry's ":id" placeholder convention
	router.Handle(contract.MenuList.Method, contract.MenuList.Path, menuController.GetAllMenuItems)
	router.Handle(contract.MenuGet.Method, contract.MenuGet.Path, menuController.GetMenuItemByID)
	router.Handle(contract.ReservationCreate.Method, contract.ReservationCreate.Path, reservationController.CreateReservation)
	router.Handle(contract.ReviewList.Method, contract.ReviewList.Path, reviewController.GetAllReviews)
	router.Handle(contract.ContactCreate.Method, contract.ContactCreate.Path, contactController.CreateMessage)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "sky-pool-restaurant",
	})
}
