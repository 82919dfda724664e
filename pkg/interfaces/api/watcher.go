package api

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/nvohra/replan/pkg/infrastructure/repositories/csv"
	"github.com/nvohra/replan/pkg/infrastructure/repositories/memory"
)

// SalesWatcher reloads an in-memory sales repository whenever the backing
// CSV file changes, so a long-running server picks up new exports without a
// restart.
type SalesWatcher struct {
	logger  *log.Logger
	path    string
	repo    *memory.SalesRepository
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewSalesWatcher starts watching the CSV file's directory. Watching the
// directory instead of the file survives editors and exporters that replace
// the file by rename.
func NewSalesWatcher(logger *log.Logger, path string, repo *memory.SalesRepository) (*SalesWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	sw := &SalesWatcher{
		logger:  logger,
		path:    path,
		repo:    repo,
		watcher: watcher,
		done:    make(chan struct{}),
	}
	go sw.run()
	return sw, nil
}

// Close stops the watcher
func (sw *SalesWatcher) Close() error {
	close(sw.done)
	return sw.watcher.Close()
}

func (sw *SalesWatcher) run() {
	for {
		select {
		case <-sw.done:
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(sw.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			sw.reload()
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.logger.Printf("Sales watcher error: %v", err)
		}
	}
}

func (sw *SalesWatcher) reload() {
	records, err := csv.NewLoader().LoadSalesHistory(sw.path)
	if err != nil {
		// Keep serving the previous snapshot when a reload fails
		sw.logger.Printf("Failed to reload sales history from %s: %v", sw.path, err)
		return
	}
	if err := sw.repo.ReplaceSales(records); err != nil {
		sw.logger.Printf("Failed to replace sales history: %v", err)
		return
	}
	sw.logger.Printf("Reloaded sales history from %s: %d records", sw.path, len(records))
}
