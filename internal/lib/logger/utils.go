package logger

import (
	"log"
	"log/slog"
	"movies/proj/internal/lib/logger/handlers/slogpretty"
	"os"
	"strings"
)

func SetupLogger(debug bool) *slog.Logger {
	var handler slog.Handler
	if debug {
		handler = slogpretty.NewPrettyHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return slog.New(handler)
}

type out struct {
	stdLog *slog.Logger
}

func (l out) Write(p []byte) (n int, err error) {
	l.stdLog.Error(strings.TrimSpace(string(p)))
	return len(p), nil
}

// LogAdapter routes a *log.Logger (e.g. http.Server.ErrorLog) through slog.
func LogAdapter(logger *slog.Logger) *log.Logger {
	return log.New(&out{logger}, "", 0)
}
