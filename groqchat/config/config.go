// groqchat/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/magiconair/properties"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreBadger   = "badger"

	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

type Config struct {
	Port   int    `env:"PORT,default=8000"`
	LogDir string `env:"LOG_DIR,default=./logs"`

	StoreDriver string `env:"STORE_DRIVER,default=mongo"`

	MongoDetails          string `env:"MONGO_DETAILS"`
	DatabaseName          string `env:"DATABASE_NAME,default=chat_db"`
	MessageCollectionName string `env:"MESSAGE_COLLECTION_NAME,default=messages"`

	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBHost     string `env:"DB_HOST,default=localhost"`
	DBPort     string `env:"DB_PORT,default=5432"`
	DBName     string `env:"DB_NAME,default=chat_db"`
	DBSSLMode  string `env:"DB_SSLMODE,default=disable"`

	BadgerFilepath string `env:"BADGER_FILEPATH,default=./data/badger"`

	LLMProvider   string `env:"LLM_PROVIDER,default=groq"`
	GroqAPIKey    string `env:"GROQ_API_KEY"`
	GroqModelName string `env:"GROQ_MODEL_NAME,default=llama3-8b-8192"`
	GroqBaseURL   string `env:"GROQ_BASE_URL,default=https://api.groq.com/openai/v1"`
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL,default=https://api.openai.com/v1"`
	OllamaURL     string `env:"OLLAMA_URL,default=http://localhost:11434"`

	SystemPrompt     string `env:"SYSTEM_PROMPT,default=You are a helpful AI assistant."`
	SystemPromptFile string `env:"SYSTEM_PROMPT_FILE"`

	HistoryWindow     int           `env:"HISTORY_WINDOW,default=10"`
	MaxHistoryTokens  int           `env:"MAX_HISTORY_TOKENS,default=0"`
	CompletionWorkers int           `env:"COMPLETION_WORKERS,default=8"`
	CompletionTimeout time.Duration `env:"COMPLETION_TIMEOUT,default=0s"`

	MinIOEndpoint  string `env:"MINIO_ENDPOINT"`
	MinIOAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinIOSecretKey string `env:"MINIO_SECRET_KEY"`
	MinIOBucket    string `env:"MINIO_BUCKET,default=transcripts"`
	MinIOUseSSL    bool   `env:"MINIO_USE_SSL,default=false"`
}

// LoadConfig reads an optional .env file, then the process environment.
// Variables already set in the environment win over the .env file.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if cfg.SystemPromptFile != "" {
		prompt, err := loadSystemPrompt(cfg.SystemPromptFile, cfg.SystemPrompt)
		if err != nil {
			return Config{}, err
		}
		cfg.SystemPrompt = prompt
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadSystemPrompt reads the system_prompt key from a .properties file.
func loadSystemPrompt(path, fallback string) (string, error) {
	props, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return "", fmt.Errorf("load system prompt file: %w", err)
	}
	return props.GetString("system_prompt", fallback), nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreMongo:
		if c.MongoDetails == "" {
			return errors.New("MONGO_DETAILS is required when STORE_DRIVER=mongo")
		}
	case StorePostgres, StoreBadger:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	switch c.LLMProvider {
	case ProviderGroq, ProviderOpenAI, ProviderOllama:
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLMProvider)
	}
	if c.HistoryWindow <= 0 {
		return fmt.Errorf("HISTORY_WINDOW must be positive, got %d", c.HistoryWindow)
	}
	if c.CompletionWorkers <= 0 {
		return fmt.Errorf("COMPLETION_WORKERS must be positive, got %d", c.CompletionWorkers)
	}
	return nil
}

// PostgresDSN builds the connection string for gorm's postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func (c Config) ArchiveEnabled() bool {
	return c.MinIOEndpoint != ""
}
