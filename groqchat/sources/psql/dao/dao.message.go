// groqchat/sources/psql/dao/dao.message.go
package dao

import (
	"context"
	"fmt"
	"groqchat/groqchat/sources/models"
	"groqchat/groqchat/sources/psql"
	"groqchat/groqchat/utils/apperrors"
	"groqchat/groqchat/utils/logging"
)

type MessageDAO struct {
	db *psql.Database
}

func NewMessageDAO(db *psql.Database) *MessageDAO {
	return &MessageDAO{db: db}
}

func (dao *MessageDAO) Append(ctx context.Context, message models.Message) (*models.Message, error) {
	if err := dao.db.DB.WithContext(ctx).Create(&message).Error; err != nil {
		return nil, fmt.Errorf("%w: insert message: %w", apperrors.ErrStorage, err)
	}
	return &message, nil
}

func (dao *MessageDAO) QueryLatest(ctx context.Context, conversationID string, maxCount int) ([]models.Message, error) {
	defer logging.LogDuration(ctx, "psql_query_latest")()
	messages := []models.Message{}
	err := dao.db.DB.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("timestamp DESC").
		Limit(maxCount).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("%w: query latest messages: %w", apperrors.ErrStorage, err)
	}
	return messages, nil
}

func (dao *MessageDAO) QueryRange(ctx context.Context, conversationID string, offset, maxCount int) ([]models.Message, error) {
	defer logging.LogDuration(ctx, "psql_query_range")()
	messages := []models.Message{}
	err := dao.db.DB.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("timestamp ASC").
		Offset(offset).
		Limit(maxCount).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("%w: query message range: %w", apperrors.ErrStorage, err)
	}
	return messages, nil
}

func (dao *MessageDAO) Count(ctx context.Context, conversationID string) (int64, error) {
	var count int64
	err := dao.db.DB.WithContext(ctx).
		Model(&models.Message{}).
		Where("conversation_id = ?", conversationID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: count messages: %w", apperrors.ErrStorage, err)
	}
	return count, nil
}

func (dao *MessageDAO) Ping(ctx context.Context) error {
	if err := dao.db.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrStorage, err)
	}
	return nil
}

func (dao *MessageDAO) Close() error {
	return dao.db.Close()
}
