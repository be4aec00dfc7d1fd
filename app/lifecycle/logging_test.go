package lifecycle

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLoggingDebugGate(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	t.Setenv("EARTRUMPET_DEBUG", "")
	InitLogging()
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))

	t.Setenv("EARTRUMPET_DEBUG", "1")
	InitLogging()
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
