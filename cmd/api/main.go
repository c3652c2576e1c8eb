package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/krvjanand/physician-directory/internal/handlers"
	"github.com/krvjanand/physician-directory/internal/logging"
	"github.com/krvjanand/physician-directory/internal/middleware"
	"github.com/krvjanand/physician-directory/internal/settings"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	logger := logging.Setup(os.Getenv("LOG_FORMAT"))

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer client.Disconnect(ctx)
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping MongoDB")
	}
	db := client.Database(os.Getenv("MONGO_DATABASE"))
	logger.Info().Str("database", db.Name()).Msg("connected to MongoDB")

	if os.Getenv("JWT_SECRET") == "" {
		logger.Warn().Msg("JWT_SECRET is not set; admin login will fail")
	}

	// --- Stores and Handlers ---
	settingsStore := settings.NewMongoStore(db)
	h := handlers.NewHandler(db, settingsStore, logger)

	// --- Gin Router ---
	r := gin.Default()

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))

	// --- Routes ---
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Healthcare Provider API is running"})
	})

	// Public directory surface.
	r.GET("/api/providers", h.GetProviders)
	r.GET("/api/providers/:id", h.GetProvider)
	r.GET("/config", h.GetBranding)
	r.GET("/api/config", h.GetSettings)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", h.RegisterUser)
		authRoutes.POST("/login", h.Login)
	}

	// Admin mutations require a valid token; the handlers enforce the role.
	admin := r.Group("/")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("/config", h.UpdateBranding)
		admin.POST("/api/config", h.SaveSettings)
		admin.GET("/api/me", h.GetCurrentUser)
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info().Str("port", port).Msg("starting server")
	if err := r.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
