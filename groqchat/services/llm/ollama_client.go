// groqchat/services/llm/ollama_client.go
package llm

import (
	"context"
	"groqchat/groqchat/utils/logging"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
	"github.com/samber/lo"
)

const OllamaBaseURL = "http://localhost:11434"

type OllamaClient struct {
	client *api.Client
}

func NewOllamaClient(baseURL string) (*OllamaClient, error) {
	if baseURL == "" {
		baseURL = OllamaBaseURL
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	return &OllamaClient{client: api.NewClient(base, http.DefaultClient)}, nil
}

func (c *OllamaClient) Run(ctx context.Context, req ChatRequest) (string, error) {
	defer logging.LogDuration(ctx, "ollama_service_run")()

	chatReq := &api.ChatRequest{
		Model: req.Model,
		Messages: lo.Map(req.Messages, func(m Message, _ int) api.Message {
			return api.Message{Role: m.Role, Content: m.Content}
		}),
		Stream: lo.ToPtr(false),
	}

	// with streaming off the callback fires once, but accumulate in case a server streams anyway
	var reply strings.Builder
	err := c.client.Chat(ctx, chatReq, func(resp api.ChatResponse) error {
		reply.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", err
	}
	return reply.String(), nil
}
