// groqchat/controllers/chat.go
package controllers

import (
	"context"
	"fmt"
	"groqchat/groqchat/services/completion"
	"groqchat/groqchat/services/history"
	"groqchat/groqchat/sources"
	"groqchat/groqchat/sources/models"
	"groqchat/groqchat/utils/apperrors"
	"groqchat/groqchat/utils/logging"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultHistoryWindow = 10

type ChatController struct {
	store         sources.MessageStore
	assembler     *history.Assembler
	gateway       *completion.Gateway
	historyWindow int
	now           func() time.Time
}

func NewChatController(store sources.MessageStore, assembler *history.Assembler, gateway *completion.Gateway, historyWindow int) *ChatController {
	if historyWindow <= 0 {
		historyWindow = DefaultHistoryWindow
	}
	return &ChatController{
		store:         store,
		assembler:     assembler,
		gateway:       gateway,
		historyWindow: historyWindow,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// NewConversation returns a fresh id. Nothing is stored until the first message.
func (c *ChatController) NewConversation() string {
	return uuid.New().String()
}

// Send persists the user's message, asks the completion service for a reply
// and persists that too. The user message stays stored even when the
// completion fails; there is no rollback.
func (c *ChatController) Send(ctx context.Context, conversationID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: message content cannot be empty", apperrors.ErrValidation)
	}
	if !c.gateway.Available() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrCompletionService, completion.ErrUnavailable)
	}

	if _, err := c.store.Append(ctx, models.NewMessage(conversationID, models.SenderUser, content, c.now())); err != nil {
		logging.ErrorLogger.Error("failed to store user message", zap.String("conversation_id", conversationID), zap.Error(err))
		return nil, err
	}

	// the window includes the message just written
	chatHistory, err := c.assembler.Assemble(ctx, conversationID, c.historyWindow)
	if err != nil {
		logging.ErrorLogger.Error("failed to assemble history", zap.String("conversation_id", conversationID), zap.Error(err))
		return nil, err
	}

	reply, err := c.gateway.Complete(ctx, chatHistory)
	if err != nil {
		logging.ErrorLogger.Error("completion failed", zap.String("conversation_id", conversationID), zap.Error(err))
		return nil, err
	}

	assistant, err := c.store.Append(ctx, models.NewMessage(conversationID, models.SenderAssistant, reply, c.now()))
	if err != nil {
		logging.ErrorLogger.Error("failed to store assistant message", zap.String("conversation_id", conversationID), zap.Error(err))
		return nil, err
	}
	logging.AppLogger.Info("message exchanged",
		zap.String("conversation_id", conversationID),
		zap.Int("history_len", len(chatHistory)),
	)
	return assistant, nil
}

// History returns a page of the conversation, oldest first. An empty first
// page means the conversation was never written to.
func (c *ChatController) History(ctx context.Context, conversationID string, skip, limit int) ([]models.Message, error) {
	messages, err := c.store.QueryRange(ctx, conversationID, skip, limit)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 && skip == 0 {
		count, err := c.store.Count(ctx, conversationID)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, fmt.Errorf("%w: conversation %s", apperrors.ErrNotFound, conversationID)
		}
	}
	return messages, nil
}
