// Package dbmongo keeps daily activity in MongoDB when ACTIVITY_STORE=mongo.
package dbmongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"stepsocial/internal/config"
)

type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoConnection(c *config.Config) (*MongoClient, error) {
	clientOptions := options.Client().ApplyURI(c.Mongo.URI)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoClient{
		Client:   client,
		Database: client.Database(c.Mongo.Database),
	}, nil
}

func (mc *MongoClient) Ping(ctx context.Context) error {
	return mc.Client.Ping(ctx, readpref.Primary())
}

func (mc *MongoClient) Close(ctx context.Context) error {
	return mc.Client.Disconnect(ctx)
}
