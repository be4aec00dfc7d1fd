package lifecycle

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

func InitLogging() {
	level := slog.LevelInfo

	if debug := os.Getenv("EARTRUMPET_DEBUG"); debug != "" {
		level = slog.LevelDebug
	}

	var writer io.Writer
	// Detect if we're a GUI app on windows, and if not, send logs to console
	if os.Stderr.Fd() != 0 {
		// Console app detected
		writer = os.Stderr
	} else {
		if err := os.MkdirAll(AppDataDir, 0o755); err != nil {
			slog.Error(fmt.Sprintf("failed to create log dir %v", err))
			return
		}
		writer = &lumberjack.Logger{
			Filename:   AppLogFile,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
		}
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	})

	slog.SetDefault(slog.New(handler))

	slog.Info("eartrumpet app started")
}
