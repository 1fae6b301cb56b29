package database

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// NewMongoClient connects to MongoDB and, when ping is set, verifies the connection.
func NewMongoClient(ctx context.Context, uri, appName string, ping bool) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo URI cannot be empty")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetAppName(appName))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if ping {
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("failed to ping mongo: %w", err)
		}
	}

	slog.Info("Successfully connected to MongoDB.", slog.String("app_name", appName))
	return client, nil
}

// CloseMongoClient disconnects the client.
func CloseMongoClient(ctx context.Context, client *mongo.Client) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		slog.Error("Error disconnecting from MongoDB", slog.String("error", err.Error()))
		return
	}
	slog.Info("MongoDB connection closed.")
}
