// groqchat/controllers/archive.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"groqchat/groqchat/sources"
	"groqchat/groqchat/sources/models"
	"groqchat/groqchat/sources/storage"
	"groqchat/groqchat/utils/apperrors"
	"groqchat/groqchat/utils/logging"
	"time"

	"go.uber.org/zap"
)

const archivePageSize = 200

type TranscriptStore interface {
	UploadTranscript(ctx context.Context, conversationID string, data []byte) (string, error)
	GetTranscript(ctx context.Context, key string) ([]byte, error)
}

type Transcript struct {
	ConversationID string           `json:"conversation_id"`
	ArchivedAt     time.Time        `json:"archived_at"`
	Messages       []models.Message `json:"messages"`
}

// ArchiveController snapshots whole conversations into object storage.
type ArchiveController struct {
	store       sources.MessageStore
	transcripts TranscriptStore
}

func NewArchiveController(store sources.MessageStore, transcripts TranscriptStore) *ArchiveController {
	return &ArchiveController{store: store, transcripts: transcripts}
}

func (c *ArchiveController) Archive(ctx context.Context, conversationID string) (string, error) {
	defer logging.LogDuration(ctx, "archive_conversation")()

	var all []models.Message
	for offset := 0; ; offset += archivePageSize {
		page, err := c.store.QueryRange(ctx, conversationID, offset, archivePageSize)
		if err != nil {
			return "", err
		}
		all = append(all, page...)
		if len(page) < archivePageSize {
			break
		}
	}
	if len(all) == 0 {
		return "", fmt.Errorf("%w: conversation %s", apperrors.ErrNotFound, conversationID)
	}

	data, err := json.Marshal(Transcript{
		ConversationID: conversationID,
		ArchivedAt:     time.Now().UTC(),
		Messages:       all,
	})
	if err != nil {
		return "", err
	}
	key, err := c.transcripts.UploadTranscript(ctx, conversationID, data)
	if err != nil {
		return "", fmt.Errorf("%w: upload transcript: %w", apperrors.ErrStorage, err)
	}
	logging.AppLogger.Info("conversation archived",
		zap.String("conversation_id", conversationID),
		zap.String("key", key),
		zap.Int("messages", len(all)),
	)
	return key, nil
}

// Get reads back the transcript archived for conversationID at the given unix second.
func (c *ArchiveController) Get(ctx context.Context, conversationID string, archivedAt int64) ([]byte, error) {
	key := storage.TranscriptKey(conversationID, time.Unix(archivedAt, 0))
	data, err := c.transcripts.GetTranscript(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: read transcript: %w", apperrors.ErrStorage, err)
	}
	return data, nil
}
