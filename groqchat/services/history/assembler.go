// groqchat/services/history/assembler.go
package history

import (
	"context"
	"groqchat/groqchat/services/llm"
	"groqchat/groqchat/sources"
	"groqchat/groqchat/sources/models"
	"groqchat/groqchat/utils/logging"
	"slices"
	"unicode/utf8"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Assembler turns the latest messages of a conversation into the ordered
// role/content sequence a completion request expects.
type Assembler struct {
	store     sources.MessageStore
	maxTokens int
}

// NewAssembler bounds history by message count only when maxTokens is 0.
// A positive maxTokens also drops the oldest messages of the window once the
// estimated token total would exceed it.
func NewAssembler(store sources.MessageStore, maxTokens int) *Assembler {
	return &Assembler{store: store, maxTokens: maxTokens}
}

// Assemble fetches the n most recent messages and returns them oldest first.
func (a *Assembler) Assemble(ctx context.Context, conversationID string, n int) ([]llm.Message, error) {
	latest, err := a.store.QueryLatest(ctx, conversationID, n)
	if err != nil {
		return nil, err
	}
	if a.maxTokens > 0 {
		latest = withinBudget(latest, a.maxTokens)
	}

	history := lo.Map(latest, func(m models.Message, _ int) llm.Message {
		return llm.Message{Role: string(m.Sender), Content: m.Content}
	})
	slices.Reverse(history)
	logging.AppLogger.Debug("assembled history",
		zap.String("conversation_id", conversationID),
		zap.Int("window", n),
		zap.Int("messages", len(history)),
	)
	return history, nil
}

// withinBudget keeps the longest newest-first prefix whose estimated token
// total fits budget. The newest message is always kept.
func withinBudget(newestFirst []models.Message, budget int) []models.Message {
	used := 0
	for i, m := range newestFirst {
		used += EstimateTokens(m.Content)
		if used > budget && i > 0 {
			return newestFirst[:i]
		}
	}
	return newestFirst
}

// EstimateTokens approximates a token count at four characters per token.
func EstimateTokens(content string) int {
	return (utf8.RuneCountInString(content) + 3) / 4
}
