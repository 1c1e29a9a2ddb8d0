package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Amezzyx/backend-riders-forge/logger"
	"github.com/Amezzyx/backend-riders-forge/middleware"
	"github.com/Amezzyx/backend-riders-forge/models"
	"github.com/Amezzyx/backend-riders-forge/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	log := logger.GetLogger()
	defer log.Sync()
	log.Info("starting application")

	// Init DB
	db := initDatabase(log)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.ContactRequest{},
		&models.GraphicsRequest{},
	); err != nil {
		log.Fatal("auto-migrate failed", zap.Error(err))
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Request metrics + scrape endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup routes
	routes.SetupRoutes(r, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info("server listening", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

// initDatabase sets up the GORM DB connection. TranslateError is on so
// constraint violations surface as gorm.ErrDuplicatedKey.
func initDatabase(log *zap.Logger) *gorm.DB {
	cfg := &gorm.Config{TranslateError: true}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), cfg)
		if err != nil {
			log.Fatal("db connection failed", zap.Error(err))
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		log.Fatal("failed to connect db", zap.Error(err))
	}
	return db
}
