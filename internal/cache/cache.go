package cache

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileSuffix is the on-disk naming scheme, kept byte-compatible with caches
// written by earlier deployments.
const FileSuffix = ".caption.txt.gz"

type implCache struct {
	dir string
}

// New creates the cache directory if needed and returns a Cache over it.
func New(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &implCache{dir: dir}, nil
}

// Get reads and decompresses the transcript for videoID.
func (c *implCache) Get(videoID string) (string, error) {
	path, err := c.path(videoID)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("open cache file: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return "", fmt.Errorf("read cache file: %w", err)
	}
	defer gz.Close()

	data, err := io.ReadAll(gz)
	if err != nil {
		return "", fmt.Errorf("decompress cache file: %w", err)
	}

	return string(data), nil
}

// Put writes the transcript gzip-compressed. The write goes to a temp file
// first and is renamed into place, so a concurrent reader never sees a
// partial entry and concurrent writers to the same key cannot corrupt it.
func (c *implCache) Put(videoID, text string) error {
	path, err := c.path(videoID)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(c.dir, videoID+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}
	defer os.Remove(tmp.Name())

	gz := gzip.NewWriter(tmp)
	if _, err := gz.Write([]byte(text)); err != nil {
		tmp.Close()
		return fmt.Errorf("compress transcript: %w", err)
	}
	if err := gz.Close(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush transcript: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp cache file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}

	return nil
}

// Keys lists the cached video IDs.
func (c *implCache) Keys() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("read cache dir: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if id, ok := VideoID(e.Name()); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// VideoID extracts the video ID from a cache file name.
func VideoID(name string) (string, bool) {
	if !strings.HasSuffix(name, FileSuffix) {
		return "", false
	}
	id := strings.TrimSuffix(name, FileSuffix)
	if id == "" {
		return "", false
	}
	return id, true
}

// path builds the cache file path for a video ID. IDs with path separators
// are rejected so a crafted ID cannot escape the cache directory.
func (c *implCache) path(videoID string) (string, error) {
	if videoID == "" || strings.ContainsAny(videoID, `/\`) || videoID != filepath.Base(videoID) {
		return "", fmt.Errorf("invalid video id %q", videoID)
	}
	return filepath.Join(c.dir, videoID+FileSuffix), nil
}
