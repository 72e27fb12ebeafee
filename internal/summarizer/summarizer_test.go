package summarizer

import (
	"errors"
	"testing"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

func newTestSummarizer(t *testing.T, keys ...string) *implSummarizer {
	t.Helper()
	cfg := &config.Config{}
	cfg.Gemini.APIKeys = keys
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return New(cfg, logger.New("error")).(*implSummarizer)
}

func TestIsQuotaError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("googleapi: Error 429: Resource has been exhausted"), true},
		{errors.New("quota exceeded for metric"), true},
		{errors.New("rpc error: code = ResourceExhausted desc = RESOURCE_EXHAUSTED"), true},
		{errors.New("googleapi: Error 400: invalid argument"), false},
		{errors.New("context deadline exceeded"), false},
	}

	for _, tt := range tests {
		if got := isQuotaError(tt.err); got != tt.want {
			t.Errorf("isQuotaError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestRotateKey(t *testing.T) {
	s := newTestSummarizer(t, "k1", "k2", "k3")

	key, slot := s.activeKey()
	if key != "k1" || slot != 0 {
		t.Fatalf("activeKey() = %q, %d", key, slot)
	}

	s.rotateKey(0)
	if key, _ := s.activeKey(); key != "k2" {
		t.Errorf("after rotate, activeKey() = %q, want k2", key)
	}

	// A second caller that also saw slot 0 must not skip k2.
	s.rotateKey(0)
	if key, _ := s.activeKey(); key != "k2" {
		t.Errorf("stale rotate moved the key, activeKey() = %q, want k2", key)
	}

	s.rotateKey(1)
	s.rotateKey(2)
	if key, _ := s.activeKey(); key != "k1" {
		t.Errorf("rotation should wrap, activeKey() = %q, want k1", key)
	}
}
