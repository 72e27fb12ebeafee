package cache

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
)

func newTestCache(t *testing.T) (Cache, string) {
	t.Helper()
	dir := t.TempDir()
	c, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	return c, dir
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"plain", "a simple transcript"},
		{"unicode", "xin chào thế giới — ここはどこ"},
		{"newlines", "line one\nline two\n\nline four"},
		{"empty", ""},
	}

	c, _ := newTestCache(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.Put("vid-"+tt.name, tt.text); err != nil {
				t.Fatalf("Put() error = %v", err)
			}
			got, err := c.Get("vid-" + tt.name)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got != tt.text {
				t.Errorf("Get() = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestGetMissing(t *testing.T) {
	c, _ := newTestCache(t)
	_, err := c.Get("never-stored")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestPutOverwrites(t *testing.T) {
	c, _ := newTestCache(t)
	if err := c.Put("vid", "first"); err != nil {
		t.Fatal(err)
	}
	if err := c.Put("vid", "second"); err != nil {
		t.Fatal(err)
	}
	got, err := c.Get("vid")
	if err != nil {
		t.Fatal(err)
	}
	if got != "second" {
		t.Errorf("Get() = %q, want last write", got)
	}
}

func TestOnDiskFormat(t *testing.T) {
	c, dir := newTestCache(t)
	if err := c.Put("dQw4w9WgXcQ", "hello captions"); err != nil {
		t.Fatal(err)
	}

	// The file layout is consumed by existing caches: <id>.caption.txt.gz,
	// plain gzip over UTF-8 text.
	path := filepath.Join(dir, "dQw4w9WgXcQ.caption.txt.gz")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected cache file at %s: %v", path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("cache file is not gzip: %v", err)
	}
	data, err := io.ReadAll(gz)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello captions" {
		t.Errorf("decompressed = %q", data)
	}
}

func TestConcurrentPutSameKey(t *testing.T) {
	c, dir := newTestCache(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := c.Put("vid", "concurrent transcript body"); err != nil {
				t.Errorf("Put() error = %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := c.Get("vid")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "concurrent transcript body" {
		t.Errorf("Get() = %q", got)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("leftover temp file: %s", e.Name())
		}
	}
}

func TestKeys(t *testing.T) {
	c, _ := newTestCache(t)
	for _, id := range []string{"aaa", "bbb", "ccc"} {
		if err := c.Put(id, "text"); err != nil {
			t.Fatal(err)
		}
	}

	keys, err := c.Keys()
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(keys)
	want := []string{"aaa", "bbb", "ccc"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestInvalidVideoID(t *testing.T) {
	c, _ := newTestCache(t)
	for _, id := range []string{"", "../escape", "a/b", `a\b`} {
		if err := c.Put(id, "x"); err == nil {
			t.Errorf("Put(%q) should reject invalid id", id)
		}
		if _, err := c.Get(id); errors.Is(err, ErrNotFound) || err == nil {
			t.Errorf("Get(%q) should reject invalid id, got %v", id, err)
		}
	}
}
