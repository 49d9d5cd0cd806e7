package main

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestRunHeadless_StopsAfterDuration(t *testing.T) {
	cfg := appConfig{TickInterval: 5 * time.Millisecond}
	var out bytes.Buffer

	count, err := runHeadless(context.Background(), cfg, 60*time.Millisecond, &out)
	if err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if count < 1 {
		t.Fatalf("count = %d, want at least one tick", count)
	}

	lines := strings.Fields(out.String())
	if int64(len(lines)) != count {
		t.Fatalf("printed %d ticks, final count %d", len(lines), count)
	}
	for i, l := range lines {
		n, err := strconv.Atoi(l)
		if err != nil || n != i+1 {
			t.Fatalf("line %d = %q, want %d", i, l, i+1)
		}
	}
}

func TestRunHeadless_StopsOnCancel(t *testing.T) {
	cfg := appConfig{TickInterval: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	var count int64
	var err error
	go func() {
		count, err = runHeadless(ctx, cfg, 0, &bytes.Buffer{})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("runHeadless did not return after cancel")
	}
	if err != nil || count != 0 {
		t.Fatalf("count = %d, err = %v; want 0, nil", count, err)
	}
}
