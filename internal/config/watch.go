package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/slotdeck/internal/logger"
)

// ReloadFunc receives each successfully reloaded configuration.
type ReloadFunc func(*Config)

// Watch reloads path whenever it changes and hands valid results to fn.
// Invalid edits are logged and skipped so the running layout keeps its last
// good configuration. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, log *logger.Logger, fn ReloadFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	defer watcher.Close()

	// Editors replace files on save; watching the directory survives that.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch config directory %s: %w", dir, err)
	}

	log = log.WithFields(map[string]any{"path": path})
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			cfg, err := Load(path)
			if err != nil {
				log.Error(err, "config reload rejected")
				continue
			}
			log.Info("config reloaded")
			fn(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error(err, "config watcher error")
		}
	}
}
