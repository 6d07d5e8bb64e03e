package logging

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLogger_WritesRotatedFiles(t *testing.T) {
	req := require.New(t)
	dir := filepath.Join(t.TempDir(), "logs")

	req.NoError(InitLogger(dir))
	t.Cleanup(func() {
		AppLogger, RequestLogger, TimerLogger, ErrorLogger = nopLoggers()
	})

	ErrorLogger.Error("boom")
	LogDuration(WithTraceID(context.Background(), "trace-1"), "test_func")()
	Sync()

	for _, name := range []string{"error.log", "timer.log"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		req.NoError(err)
		req.NotEmpty(data, name)
	}
	timer, err := os.ReadFile(filepath.Join(dir, "timer.log"))
	req.NoError(err)
	req.Contains(string(timer), `"trace_id":"trace-1"`)
	req.Contains(string(timer), `"func":"test_func"`)
}

func nopLoggers() (app, request, timer, errs *zap.Logger) {
	return zap.NewNop(), zap.NewNop(), zap.NewNop(), zap.NewNop()
}
