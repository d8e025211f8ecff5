package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"moneybrief/internal/advice"
	"moneybrief/internal/config"
	"moneybrief/internal/logging"
	"moneybrief/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// seed writes the built-in advice catalog to MongoDB
func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	mongoURI := cfg.MongoURI
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(ctx)

	catalog := advice.Default()
	repo := repository.NewCatalogRepo(client.Database(cfg.MongoDatabase))
	if err := repo.Save(ctx, catalog); err != nil {
		logger.Fatal("failed to seed advice catalog", zap.Error(err))
	}

	logger.Info("advice catalog seeded",
		zap.String("database", cfg.MongoDatabase),
		zap.String("collection", repository.CatalogCollection),
		zap.String("version", catalog.Version),
		zap.Int("resources", len(catalog.Resources)))
}
