package main

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// These tests swap the global logger, so they do not run in parallel.

func restoreLogger(t *testing.T) {
	t.Helper()
	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestOpenLogFile_FallsBackToStderr(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	w, closeFn := openLogFile(filepath.Join(blocker, "sub", "x.log"))
	defer closeFn()

	if w != os.Stderr {
		t.Fatalf("writer = %T, want os.Stderr for a path under a regular file", w)
	}
}

func TestConfigureLogger_WritesJSONAtConfiguredLevel(t *testing.T) {
	restoreLogger(t)
	path := filepath.Join(t.TempDir(), "state", "statekit.log")

	cleanup := configureLogger(appConfig{LogLevel: "warn", LogFile: path}, false)
	if got := zerolog.GlobalLevel(); got != zerolog.WarnLevel {
		t.Fatalf("global level = %s, want warn", got)
	}
	log.Info().Msg("below level")
	log.Warn().Str("action", "reset").Msg("rejected")
	cleanup()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	defer f.Close()

	var records []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rec map[string]any
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			t.Fatalf("line is not JSON: %q: %v", sc.Text(), err)
		}
		records = append(records, rec)
	}

	if len(records) != 1 {
		t.Fatalf("records = %v, want only the warn record", records)
	}
	if records[0]["level"] != "warn" || records[0]["message"] != "rejected" || records[0]["action"] != "reset" {
		t.Fatalf("record = %v", records[0])
	}
	if _, ok := records[0]["time"]; !ok {
		t.Fatalf("record has no timestamp: %v", records[0])
	}
}

func TestConfigureLogger_HeadlessUsesConsole(t *testing.T) {
	restoreLogger(t)
	path := filepath.Join(t.TempDir(), "unused.log")

	cleanup := configureLogger(appConfig{LogLevel: "debug", LogFile: path}, true)
	cleanup()

	if got := zerolog.GlobalLevel(); got != zerolog.DebugLevel {
		t.Fatalf("global level = %s, want debug", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("headless run created %s", path)
	}
}
