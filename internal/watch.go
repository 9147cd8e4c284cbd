package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/gnolang/clin/internal/types"
)

// StartWatching begins re-linting the given directories whenever a source
// file changes. Found issues are handed to report.
func (e *Engine) StartWatching(dirs []string, report func(filename string, issues []tt.Issue)) error {
	if e.isWatching {
		return fmt.Errorf("already watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	e.watcher = watcher
	e.watchDirs = dirs

	for _, dir := range e.watchDirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return e.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			e.watcher.Close()
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	e.isWatching = true
	go e.watchLoop(report)
	return nil
}

func (e *Engine) StopWatching() error {
	if !e.isWatching {
		return nil
	}
	e.isWatching = false
	return e.watcher.Close()
}

func (e *Engine) watchLoop(report func(string, []tt.Issue)) {
	for e.isWatching {
		select {
		case event, ok := <-e.watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event, report)
		case err, ok := <-e.watcher.Errors:
			if !ok {
				return
			}
			e.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event, report func(string, []tt.Issue)) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !strings.HasSuffix(event.Name, ".swift") {
		return
	}

	// editors often emit several write events per save; let them settle
	time.Sleep(100 * time.Millisecond)

	issues, err := e.Run(event.Name)
	if err != nil {
		e.logger.Error("watch lint failed", zap.String("file", event.Name), zap.Error(err))
		return
	}
	report(event.Name, issues)
}
