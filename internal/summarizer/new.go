package summarizer

import (
	"sync"
	"time"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

type implSummarizer struct {
	apiKeys []string
	model   string
	timeout time.Duration
	logger  logger.Logger

	mu         sync.Mutex
	currentKey int
}

// New creates a Summarizer that rotates through the configured Gemini API keys.
func New(cfg *config.Config, log logger.Logger) Summarizer {
	return &implSummarizer{
		apiKeys: cfg.Gemini.APIKeys,
		model:   cfg.Gemini.Model,
		timeout: time.Duration(cfg.Gemini.RequestTimeout) * time.Second,
		logger:  log,
	}
}
