package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events editors produce for a single save.
const reloadDelay = 100 * time.Millisecond

// Reload is one result of re-reading a watched config file.
// Exactly one of Config and Err is set.
type Reload struct {
	Config *Config
	Err    error
}

// Watch re-loads the config file at path whenever it is written or replaced, and delivers
// the result on the returned channel. The directory is watched rather than the file so that
// editors which save by renaming a temporary file are seen too. The channel is closed when
// ctx is done.
//
// Parameters:
//   - ctx: stops the watcher when done
//   - path: the config file to watch
//   - flags: command-line overrides re-applied on every reload, may be nil
//
// Returns:
//   - <-chan Reload: reload results, newest last
//   - error: an error if the watcher could not be started
func Watch(ctx context.Context, path string, flags *Flags) (<-chan Reload, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan Reload, 1)
	go func() {
		defer close(out)
		defer watcher.Close()

		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					pending = time.After(reloadDelay)
				}
			case <-pending:
				pending = nil
				cfg, loadErr := Load(abs, flags)
				r := Reload{Config: cfg, Err: loadErr}
				select {
				case out <- r:
				case <-ctx.Done():
					return
				}
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case out <- Reload{Err: watchErr}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
