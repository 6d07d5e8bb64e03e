// groqchat/services/llm/llm.go
//go:generate go run go.uber.org/mock/mockgen -source=llm.go -destination=../../mocks/mock_llm_client.go -package=mocks
package llm

import (
	"context"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Client runs one non-streaming chat completion and returns the reply text.
type Client interface {
	Run(ctx context.Context, req ChatRequest) (string, error)
}

type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
