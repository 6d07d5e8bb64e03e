package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("STORE_DRIVER", "badger")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	req.NoError(err)

	req.Equal(8000, cfg.Port)
	req.Equal("chat_db", cfg.DatabaseName)
	req.Equal("messages", cfg.MessageCollectionName)
	req.Equal("groq", cfg.LLMProvider)
	req.Equal("llama3-8b-8192", cfg.GroqModelName)
	req.Equal("You are a helpful AI assistant.", cfg.SystemPrompt)
	req.Equal(10, cfg.HistoryWindow)
	req.Equal(0, cfg.MaxHistoryTokens)
	req.Equal(time.Duration(0), cfg.CompletionTimeout)
	req.False(cfg.ArchiveEnabled())
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), ".env")
	req.NoError(os.WriteFile(path, []byte("STORE_DRIVER=mongo\nMONGO_DETAILS=mongodb://localhost:27017\nHISTORY_WINDOW=20\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("STORE_DRIVER")
		os.Unsetenv("MONGO_DETAILS")
		os.Unsetenv("HISTORY_WINDOW")
	})

	cfg, err := LoadConfig(path)
	req.NoError(err)
	req.Equal(StoreMongo, cfg.StoreDriver)
	req.Equal("mongodb://localhost:27017", cfg.MongoDetails)
	req.Equal(20, cfg.HistoryWindow)
}

func TestLoadConfig_SystemPromptFile(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "prompt.properties")
	req.NoError(os.WriteFile(path, []byte("system_prompt = You answer in haiku.\n"), 0o600))
	t.Setenv("STORE_DRIVER", "badger")
	t.Setenv("SYSTEM_PROMPT_FILE", path)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	req.NoError(err)
	req.Equal("You answer in haiku.", cfg.SystemPrompt)
}

func TestValidate(t *testing.T) {
	base := Config{StoreDriver: StoreBadger, LLMProvider: ProviderGroq, HistoryWindow: 10, CompletionWorkers: 1}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, base.Validate())
	})
	t.Run("mongo requires connection string", func(t *testing.T) {
		cfg := base
		cfg.StoreDriver = StoreMongo
		require.ErrorContains(t, cfg.Validate(), "MONGO_DETAILS")
	})
	t.Run("unknown driver", func(t *testing.T) {
		cfg := base
		cfg.StoreDriver = "cassandra"
		require.Error(t, cfg.Validate())
	})
	t.Run("unknown provider", func(t *testing.T) {
		cfg := base
		cfg.LLMProvider = "bard"
		require.Error(t, cfg.Validate())
	})
	t.Run("window must be positive", func(t *testing.T) {
		cfg := base
		cfg.HistoryWindow = 0
		require.Error(t, cfg.Validate())
	})
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "chat", DBSSLMode: "disable"}
	require.Equal(t, "host=db port=5432 user=u password=p dbname=chat sslmode=disable", cfg.PostgresDSN())
}
