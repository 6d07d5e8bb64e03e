// groqchat/sources/mongodb/dao.message.go
package mongodb

import (
	"context"
	"fmt"
	"groqchat/groqchat/sources/models"
	"groqchat/groqchat/utils/apperrors"
	"groqchat/groqchat/utils/logging"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MessageDAO struct {
	db *Database
}

func NewMessageDAO(db *Database) *MessageDAO {
	return &MessageDAO{db: db}
}

func conversationFilter(conversationID string) bson.D {
	return bson.D{{Key: "conversation_id", Value: conversationID}}
}

func latestOptions(maxCount int) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(maxCount))
}

func rangeOptions(offset, maxCount int) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(maxCount))
}

func (dao *MessageDAO) Append(ctx context.Context, message models.Message) (*models.Message, error) {
	// BSON dates keep millisecond precision; truncate so the returned copy matches what is stored
	message.Timestamp = message.Timestamp.Truncate(time.Millisecond)
	if _, err := dao.db.Messages.InsertOne(ctx, message); err != nil {
		return nil, fmt.Errorf("%w: insert message: %w", apperrors.ErrStorage, err)
	}
	return &message, nil
}

func (dao *MessageDAO) QueryLatest(ctx context.Context, conversationID string, maxCount int) ([]models.Message, error) {
	defer logging.LogDuration(ctx, "mongo_query_latest")()
	messages, err := dao.find(ctx, conversationFilter(conversationID), latestOptions(maxCount))
	if err != nil {
		return nil, fmt.Errorf("%w: query latest messages: %w", apperrors.ErrStorage, err)
	}
	return messages, nil
}

func (dao *MessageDAO) QueryRange(ctx context.Context, conversationID string, offset, maxCount int) ([]models.Message, error) {
	defer logging.LogDuration(ctx, "mongo_query_range")()
	messages, err := dao.find(ctx, conversationFilter(conversationID), rangeOptions(offset, maxCount))
	if err != nil {
		return nil, fmt.Errorf("%w: query message range: %w", apperrors.ErrStorage, err)
	}
	return messages, nil
}

func (dao *MessageDAO) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]models.Message, error) {
	cursor, err := dao.db.Messages.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	messages := []models.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (dao *MessageDAO) Count(ctx context.Context, conversationID string) (int64, error) {
	count, err := dao.db.Messages.CountDocuments(ctx, conversationFilter(conversationID))
	if err != nil {
		return 0, fmt.Errorf("%w: count messages: %w", apperrors.ErrStorage, err)
	}
	return count, nil
}

func (dao *MessageDAO) Ping(ctx context.Context) error {
	if err := dao.db.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrStorage, err)
	}
	return nil
}

func (dao *MessageDAO) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return dao.db.Close(ctx)
}
