// groqchat/sources/badgerdb/dao.message.go
package badgerdb

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"groqchat/groqchat/sources/models"
	"groqchat/groqchat/utils/apperrors"
	"groqchat/groqchat/utils/logging"

	"github.com/dgraph-io/badger/v4"
)

type MessageDAO struct {
	db *badger.DB
}

func NewMessageDAO(db *badger.DB) *MessageDAO {
	return &MessageDAO{db: db}
}

// conversationPrefix hex-encodes the id so that conversation "a" never
// prefix-matches the keys of conversation "a:b".
func conversationPrefix(conversationID string) []byte {
	return []byte("msg:" + hex.EncodeToString([]byte(conversationID)) + ":")
}

// messageKey is "msg:{hex(conversation_id)}:{unix_nanos_padded}:{id}".
// The 19-digit padding keeps lexicographic order chronological and the id
// separates two messages written in the same nanosecond.
func messageKey(message models.Message) []byte {
	return append(conversationPrefix(message.ConversationID),
		fmt.Sprintf("%019d:%s", message.Timestamp.UnixNano(), message.ID)...)
}

func (dao *MessageDAO) Append(ctx context.Context, message models.Message) (*models.Message, error) {
	value, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("%w: encode message: %w", apperrors.ErrStorage, err)
	}
	err = dao.db.Update(func(txn *badger.Txn) error {
		return txn.Set(messageKey(message), value)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: insert message: %w", apperrors.ErrStorage, err)
	}
	return &message, nil
}

func (dao *MessageDAO) QueryLatest(ctx context.Context, conversationID string, maxCount int) ([]models.Message, error) {
	defer logging.LogDuration(ctx, "badger_query_latest")()
	prefix := conversationPrefix(conversationID)
	options := badger.DefaultIteratorOptions
	options.Reverse = true
	options.Prefix = prefix
	// 0xFF sorts after every digit so the reverse seek lands on the newest key
	seekKey := append(append([]byte{}, prefix...), 0xFF)

	messages, err := dao.scan(options, seekKey, 0, maxCount)
	if err != nil {
		return nil, fmt.Errorf("%w: query latest messages: %w", apperrors.ErrStorage, err)
	}
	return messages, nil
}

func (dao *MessageDAO) QueryRange(ctx context.Context, conversationID string, offset, maxCount int) ([]models.Message, error) {
	defer logging.LogDuration(ctx, "badger_query_range")()
	prefix := conversationPrefix(conversationID)
	options := badger.DefaultIteratorOptions
	options.Prefix = prefix

	messages, err := dao.scan(options, prefix, offset, maxCount)
	if err != nil {
		return nil, fmt.Errorf("%w: query message range: %w", apperrors.ErrStorage, err)
	}
	return messages, nil
}

func (dao *MessageDAO) scan(options badger.IteratorOptions, seekKey []byte, offset, maxCount int) ([]models.Message, error) {
	messages := []models.Message{}
	if maxCount <= 0 {
		return messages, nil
	}
	err := dao.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(options)
		defer it.Close()

		skipped := 0
		for it.Seek(seekKey); it.ValidForPrefix(options.Prefix); it.Next() {
			if skipped < offset {
				skipped++
				continue
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			var message models.Message
			if err := json.Unmarshal(value, &message); err != nil {
				return err
			}
			messages = append(messages, message)
			if len(messages) == maxCount {
				return nil
			}
		}
		return nil
	})
	return messages, err
}

func (dao *MessageDAO) Count(ctx context.Context, conversationID string) (int64, error) {
	var count int64
	err := dao.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		options.Prefix = conversationPrefix(conversationID)
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: count messages: %w", apperrors.ErrStorage, err)
	}
	return count, nil
}

func (dao *MessageDAO) Ping(ctx context.Context) error {
	if dao.db.IsClosed() {
		return fmt.Errorf("%w: badger database is closed", apperrors.ErrStorage)
	}
	return nil
}

func (dao *MessageDAO) Close() error {
	return dao.db.Close()
}
