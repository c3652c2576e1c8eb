// Seeds the directory with sample providers and an initial admin account so
// the listing and admin screens have something to work with locally.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/krvjanand/physician-directory/internal/logging"
	"github.com/krvjanand/physician-directory/internal/models"
	"github.com/krvjanand/physician-directory/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	logger := logging.Setup(os.Getenv("LOG_FORMAT"))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer client.Disconnect(ctx)
	db := client.Database(os.Getenv("MONGO_DATABASE"))

	seedProviders(ctx, db, logger)
	seedAdmin(ctx, db, logger)
}

func seedProviders(ctx context.Context, db *mongo.Database, logger zerolog.Logger) {
	providers := db.Collection("providers")
	count, err := providers.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to inspect providers collection")
	}
	if count > 0 {
		logger.Info().Int64("count", count).Msg("providers already seeded, skipping")
		return
	}

	docs := make([]interface{}, 0, len(sampleProviders))
	for _, p := range sampleProviders {
		p.ID = uuid.NewString()
		docs = append(docs, p)
	}
	if _, err := providers.InsertMany(ctx, docs); err != nil {
		logger.Fatal().Err(err).Msg("failed to insert sample providers")
	}
	logger.Info().Int("count", len(docs)).Msg("inserted sample providers")
}

func seedAdmin(ctx context.Context, db *mongo.Database, logger zerolog.Logger) {
	users := db.Collection("users")

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	err := users.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		logger.Info().Str("email", email).Msg("admin account already exists, skipping")
		return
	}
	if err != mongo.ErrNoDocuments {
		logger.Fatal().Err(err).Msg("failed to look up admin account")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to hash admin password")
	}
	_, err = users.InsertOne(ctx, models.User{
		ID:       primitive.NewObjectID(),
		FullName: "Directory Admin",
		Email:    email,
		Password: hashed,
		Role:     "admin",
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create admin account")
	}
	logger.Info().Str("email", email).Msg("created admin account")
}
