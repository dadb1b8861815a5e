package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// reloadDebounce is how long to wait after the last write before reloading.
// Editors often emit several events per save.
const reloadDebounce = 500 * time.Millisecond

// Watcher watches the config file for changes and triggers hot-reload of the
// screening catalogs. Server and logging settings require a restart; only the
// reload callback's consumer decides what to pick up.
type Watcher struct {
	watcher *fsnotify.Watcher
	logger  *zap.Logger
	path    string
	onLoad  func(*Config)
}

// NewWatcher creates a file watcher for the given config path. onLoad is
// invoked with the freshly loaded and validated config after each change.
func NewWatcher(path string, logger *zap.Logger, onLoad func(*Config)) (*Watcher, error) {
	if onLoad == nil {
		return nil, fmt.Errorf("onLoad callback is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not watchable: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %q: %w", path, err)
	}

	return &Watcher{
		watcher: fw,
		logger:  logger,
		path:    path,
		onLoad:  onLoad,
	}, nil
}

// Run watches for file changes and reloads config. Blocks until ctx is
// cancelled. A config that fails to load or validate is logged and skipped;
// the previous config stays active.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var debounce *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(reloadDebounce, w.reload)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadWithFile(w.path)
	if err != nil {
		w.logger.Warn("config hot-reload failed, keeping previous config",
			zap.String("path", w.path),
			zap.Error(err),
		)
		return
	}

	w.logger.Info("config hot-reloaded", zap.String("path", w.path))
	w.onLoad(cfg)
}
