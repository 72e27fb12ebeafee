package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/summary-flow/internal/cache"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

func waitFor(t *testing.T, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestInitialIndex(t *testing.T) {
	w := New(t.TempDir(), []string{"abc", "def"}, logger.New("error"))
	if !w.Has("abc") || !w.Has("def") {
		t.Error("Has() should report pre-seeded IDs")
	}
	if w.Has("ghi") {
		t.Error("Has() should not report unknown IDs")
	}
}

func TestIndexFollowsDirectory(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, nil, logger.New("error"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "dQw4w9WgXcQ"+cache.FileSuffix)
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if !waitFor(t, func() bool { return w.Has("dQw4w9WgXcQ") }) {
		t.Fatal("Has() should see newly written cache file")
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if !waitFor(t, func() bool { return !w.Has("dQw4w9WgXcQ") }) {
		t.Fatal("Has() should drop removed cache file")
	}
}

func TestIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, nil, logger.New("error"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	marker := filepath.Join(dir, "marker"+cache.FileSuffix)
	if err := os.WriteFile(marker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	// Once the marker shows up the earlier event has been processed too.
	if !waitFor(t, func() bool { return w.Has("marker") }) {
		t.Fatal("Has() should see marker file")
	}
	if w.Has("notes.txt") || w.Has("notes") {
		t.Error("Has() should ignore files without the cache suffix")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	w := New(t.TempDir(), nil, logger.New("error"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := w.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("second Stop() error = %v", err)
	}
}
