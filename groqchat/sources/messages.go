// groqchat/sources/messages.go
//go:generate go run go.uber.org/mock/mockgen -source=messages.go -destination=../mocks/mock_message_store.go -package=mocks
package sources

import (
	"context"
	"groqchat/groqchat/sources/models"
)

// MessageStore is the append-only record of conversation messages.
// Implementations must be safe for concurrent use.
type MessageStore interface {
	// Append inserts message as given. Duplicate calls create duplicate records.
	Append(ctx context.Context, message models.Message) (*models.Message, error)
	// QueryLatest returns up to maxCount messages of the conversation, newest first.
	QueryLatest(ctx context.Context, conversationID string, maxCount int) ([]models.Message, error)
	// QueryRange returns a page of the conversation, oldest first.
	QueryRange(ctx context.Context, conversationID string, offset, maxCount int) ([]models.Message, error)
	Count(ctx context.Context, conversationID string) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}
