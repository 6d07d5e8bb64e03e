// groqchat/services/completion/gateway.go
package completion

import (
	"context"
	"errors"
	"fmt"
	"groqchat/groqchat/services/llm"
	"groqchat/groqchat/utils/apperrors"
	"groqchat/groqchat/utils/logging"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

var ErrUnavailable = errors.New("completion provider is not configured")

type Options struct {
	Model        string
	SystemPrompt string
	// Workers bounds how many provider calls run at once.
	Workers int64
	// Timeout applies per call when positive.
	Timeout time.Duration
}

// Gateway sends the system prompt plus history to the provider on a bounded
// pool of goroutines. It never retries.
type Gateway struct {
	client llm.Client
	opts   Options
	sem    *semaphore.Weighted
}

func NewGateway(client llm.Client, opts Options) *Gateway {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &Gateway{client: client, opts: opts, sem: semaphore.NewWeighted(opts.Workers)}
}

func (g *Gateway) Available() bool {
	return g.client != nil
}

// BuildRequest prefixes exactly one system entry to history.
func (g *Gateway) BuildRequest(history []llm.Message) llm.ChatRequest {
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: g.opts.SystemPrompt})
	messages = append(messages, history...)
	return llm.ChatRequest{Model: g.opts.Model, Messages: messages}
}

type result struct {
	content string
	err     error
}

// Complete blocks until the provider answers or ctx is done. Every failure is
// wrapped in apperrors.ErrCompletionService.
func (g *Gateway) Complete(ctx context.Context, history []llm.Message) (string, error) {
	if !g.Available() {
		return "", fmt.Errorf("%w: %w", apperrors.ErrCompletionService, ErrUnavailable)
	}
	defer logging.LogDuration(ctx, "completion_gateway")()

	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}
	req := g.BuildRequest(history)

	if err := g.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("%w: waiting for a completion worker: %w", apperrors.ErrCompletionService, err)
	}
	done := make(chan result, 1)
	go func() {
		defer g.sem.Release(1)
		content, err := g.client.Run(ctx, req)
		done <- result{content: content, err: err}
	}()

	select {
	case <-ctx.Done():
		logging.ErrorLogger.Error("completion call abandoned", zap.Error(ctx.Err()))
		return "", fmt.Errorf("%w: %w", apperrors.ErrCompletionService, ctx.Err())
	case res := <-done:
		if res.err != nil {
			logging.ErrorLogger.Error("completion call failed", zap.Error(res.err))
			return "", fmt.Errorf("%w: %w", apperrors.ErrCompletionService, res.err)
		}
		if strings.TrimSpace(res.content) == "" {
			return "", fmt.Errorf("%w: empty response from provider", apperrors.ErrCompletionService)
		}
		return res.content, nil
	}
}
