// groqchat/services/llm/groq_client.go
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	httputils "groqchat/groqchat/utils/http"
	"groqchat/groqchat/utils/logging"
	"net/http"
	"strings"
)

const (
	GroqBaseURL   = "https://api.groq.com/openai/v1"
	OpenAIBaseURL = "https://api.openai.com/v1"
)

// GroqClient talks to any OpenAI-compatible chat completions endpoint.
// Groq is the default; OpenAI works by swapping the base URL.
type GroqClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewGroqClient returns a client pointing to baseURL, e.g. GroqBaseURL.
func NewGroqClient(baseURL, apiKey string) *GroqClient {
	if baseURL == "" {
		baseURL = GroqBaseURL
	}
	return &GroqClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

type groqResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

type groqErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Run (non-streaming) chat completion
func (c *GroqClient) Run(ctx context.Context, req ChatRequest) (string, error) {
	defer logging.LogDuration(ctx, "groq_service_run")()

	url := fmt.Sprintf("%s/chat/completions", c.baseURL)
	req.Stream = false

	var resp groqResponse
	if err := httputils.PostJSONWithAuth(ctx, c.httpClient, url, c.apiKey, req, &resp); err != nil {
		return "", providerError(err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// providerError pulls the provider's own message out of an error body when present.
func providerError(err error) error {
	var statusErr *httputils.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}
	var body groqErrorBody
	if json.Unmarshal([]byte(statusErr.Body), &body) == nil && body.Error.Message != "" {
		return fmt.Errorf("provider returned %d: %s", statusErr.Code, body.Error.Message)
	}
	return err
}
