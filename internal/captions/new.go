package captions

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

type implFetcher struct {
	client *http.Client
	logger logger.Logger
}

// New creates a new Fetcher instance
func New(cfg *config.Config, log logger.Logger) Fetcher {
	return &implFetcher{
		client: &http.Client{
			Timeout: time.Duration(cfg.Video.DownloadTimeout) * time.Second,
		},
		logger: log,
	}
}
