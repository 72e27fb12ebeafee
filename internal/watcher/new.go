package watcher

import (
	"sync"

	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

type implWatcher struct {
	dir    string
	logger logger.Logger

	mu    sync.RWMutex
	index map[string]struct{}

	done chan struct{}
	stop sync.Once
}

// New creates a watcher over the cache directory, pre-seeded with the IDs
// already cached at startup.
func New(dir string, initial []string, log logger.Logger) Watcher {
	index := make(map[string]struct{}, len(initial))
	for _, id := range initial {
		index[id] = struct{}{}
	}
	return &implWatcher{
		dir:    dir,
		logger: log,
		index:  index,
		done:   make(chan struct{}),
	}
}
