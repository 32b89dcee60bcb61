// Package file serves the user-maintained style guide from a markdown
// file on disk, with an fsnotify watcher keeping a cached copy fresh.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
	"github.com/inkwell-labs/inkwell-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.StyleGuideStore = (*Store)(nil)

// Store reads the style guide from a file, caching the content and
// invalidating the cache when the file changes on disk.
//
// The watcher observes the containing directory rather than the file
// itself so editors that replace the file on save (write to temp,
// rename over) don't silently detach the watch.
type Store struct {
	path string

	mu     sync.RWMutex
	cached string
	loaded bool

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewStore creates a style guide store for the given file path.
// The file does not need to exist yet; Get reports domain.ErrNotFound
// until it does.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("style guide path is required")
	}

	s := &Store{path: path}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("create style guide directory: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	s.watcher = watcher
	s.done = make(chan struct{})
	go s.watch()

	return s, nil
}

// Get returns the style guide content, from cache when the file has not
// changed since the last read.
func (s *Store) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	if s.loaded {
		content := s.cached
		s.mu.RUnlock()
		return content, nil
	}
	s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: no style guide at %s", domain.ErrNotFound, s.path)
		}
		return "", fmt.Errorf("read style guide: %w", err)
	}

	content := string(data)
	s.mu.Lock()
	s.cached = content
	s.loaded = true
	s.mu.Unlock()

	return content, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Close stops the file watcher.
func (s *Store) Close() error {
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	<-s.done
	return err
}

// watch invalidates the cache whenever the backing file is touched.
func (s *Store) watch() {
	defer close(s.done)

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				logger.Debug("Style guide changed on disk (%s), dropping cache", event.Op)
				s.invalidate()
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Style guide watcher: %v", err)
		}
	}
}

// invalidate drops the cached content; the next Get re-reads the file.
func (s *Store) invalidate() {
	s.mu.Lock()
	s.cached = ""
	s.loaded = false
	s.mu.Unlock()
}
