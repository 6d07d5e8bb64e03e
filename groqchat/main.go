// groqchat/main.go
package main

import (
	"context"
	"fmt"
	"groqchat/groqchat/config"
	"groqchat/groqchat/controllers"
	"groqchat/groqchat/routes"
	"groqchat/groqchat/services/completion"
	"groqchat/groqchat/services/history"
	"groqchat/groqchat/services/llm"
	"groqchat/groqchat/sources"
	"groqchat/groqchat/sources/storage"
	"groqchat/groqchat/utils/logging"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	if err := logging.InitLogger(cfg.LogDir); err != nil {
		fmt.Fprintln(os.Stderr, "logger init error:", err)
		os.Exit(1)
	}
	defer logging.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := sources.Open(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.String("driver", cfg.StoreDriver), zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}
	defer store.Close()
	logging.AppLogger.Info("message store ready", zap.String("driver", cfg.StoreDriver))

	client, err := llm.NewClient(cfg)
	if err != nil {
		logging.ErrorLogger.Error("llm client error", zap.String("provider", cfg.LLMProvider), zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}
	gateway := completion.NewGateway(client, completion.Options{
		Model:        cfg.GroqModelName,
		SystemPrompt: cfg.SystemPrompt,
		Workers:      int64(cfg.CompletionWorkers),
		Timeout:      cfg.CompletionTimeout,
	})
	assembler := history.NewAssembler(store, cfg.MaxHistoryTokens)

	ctrls := routes.Controllers{
		Chat:   controllers.NewChatController(store, assembler, gateway, cfg.HistoryWindow),
		Health: controllers.NewHealthController(store),
	}

	if cfg.ArchiveEnabled() {
		minioClient, err := storage.NewMinIOClient(ctx, cfg)
		if err != nil {
			logging.ErrorLogger.Error("minio connection error", zap.Error(err))
			logging.Sync()
			os.Exit(1)
		}
		ctrls.Archive = controllers.NewArchiveController(store, minioClient)
		logging.AppLogger.Info("transcript archive enabled", zap.String("bucket", cfg.MinIOBucket))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           routes.NewRouter(ctrls),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
