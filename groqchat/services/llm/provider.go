// groqchat/services/llm/provider.go
package llm

import (
	"fmt"
	"groqchat/groqchat/config"
	"groqchat/groqchat/utils/logging"
)

// NewClient picks the provider named by cfg.LLMProvider. A hosted provider
// with no API key yields a nil client, which the gateway reports as unavailable.
func NewClient(cfg config.Config) (Client, error) {
	switch cfg.LLMProvider {
	case config.ProviderGroq:
		if cfg.GroqAPIKey == "" {
			logging.AppLogger.Warn("GROQ_API_KEY is not set. Completion functionality will not work.")
			return nil, nil
		}
		return NewGroqClient(cfg.GroqBaseURL, cfg.GroqAPIKey), nil
	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			logging.AppLogger.Warn("OPENAI_API_KEY is not set. Completion functionality will not work.")
			return nil, nil
		}
		return NewGroqClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey), nil
	case config.ProviderOllama:
		return NewOllamaClient(cfg.OllamaURL)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLMProvider)
	}
}
