package service

import (
	"github.com/nguyentantai21042004/summary-flow/internal/cache"
	"github.com/nguyentantai21042004/summary-flow/internal/captions"
	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/extractor"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/summarizer"
	"github.com/nguyentantai21042004/summary-flow/internal/watcher"
)

type implService struct {
	cfg        *config.Config
	extractor  extractor.Extractor
	captions   captions.Fetcher
	cache      cache.Cache
	index      watcher.Watcher // optional, may be nil
	summarizer summarizer.Summarizer
	logger     logger.Logger
}

// New wires the pipeline stages into a Service. index may be nil when no
// cache watcher is running.
func New(
	cfg *config.Config,
	ex extractor.Extractor,
	fetch captions.Fetcher,
	store cache.Cache,
	index watcher.Watcher,
	sum summarizer.Summarizer,
	log logger.Logger,
) Service {
	return &implService{
		cfg:        cfg,
		extractor:  ex,
		captions:   fetch,
		cache:      store,
		index:      index,
		summarizer: sum,
		logger:     log,
	}
}
