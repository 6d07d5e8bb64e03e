// groqchat/sources/mongodb/database.go
package mongodb

import (
	"context"
	"fmt"
	"groqchat/groqchat/utils/logging"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type Database struct {
	Client   *mongo.Client
	Messages *mongo.Collection
}

// NewDatabase connects, verifies the deployment with a ping and ensures the
// message indexes exist.
func NewDatabase(ctx context.Context, uri, databaseName, collectionName string) (*Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	logging.AppLogger.Info("connected to mongo", zap.String("database", databaseName))

	collection := client.Database(databaseName).Collection(collectionName)
	if _, err := collection.Indexes().CreateMany(ctx, messageIndexes()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ensure indexes on %s: %w", collectionName, err)
	}
	logging.AppLogger.Info("ensured message indexes", zap.String("collection", collectionName))

	return &Database{Client: client, Messages: collection}, nil
}

func messageIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "conversation_id", Value: 1}, {Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "timestamp", Value: 1}}},
	}
}

func (db *Database) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}
