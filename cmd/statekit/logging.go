package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// configureLogger points the global zerolog logger at the right sink. The
// TUI owns stdout, so interactive runs log to a file under
// ~/.local/state/statekit; headless runs log to stderr. The returned func
// closes the file, if any.
func configureLogger(cfg appConfig, headless bool) func() {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if headless {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}).
			With().Timestamp().Logger()
		return func() {}
	}

	w, closeFn := openLogFile(cfg.LogFile)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return closeFn
}

func openLogFile(path string) (io.Writer, func()) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return os.Stderr, func() {}
		}
		path = filepath.Join(home, ".local", "state", "statekit", "statekit.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return os.Stderr, func() {}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr, func() {}
	}
	return f, func() {
		_ = f.Close()
	}
}
