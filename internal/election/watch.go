package election

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"statbook/internal/logging"
)

// watchDebounce is how long Watch waits for a burst of writes to settle.
const watchDebounce = 250 * time.Millisecond

// Watch signals on the returned channel whenever a ballot file directly under
// dir is created, written, removed, or renamed. Bursts of events are
// coalesced into one signal. The channel is closed once ctx is done.
func Watch(ctx context.Context, dir string, opts ReadOptions) (<-chan struct{}, error) {
	pattern := opts.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("ballot pattern %q: %w", pattern, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create ballot watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	logger := logging.WithContext(ctx, opts.logger())
	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		defer watcher.Close()

		var (
			timer *time.Timer
			fire  <-chan time.Time
		)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !isBallotEvent(event, pattern) {
					continue
				}
				logger.Debug("ballot file changed",
					logging.String(logging.FieldPath, event.Name),
					logging.String("op", event.Op.String()),
				)
				if timer == nil {
					timer = time.NewTimer(watchDebounce)
				} else {
					timer.Reset(watchDebounce)
				}
				fire = timer.C
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("ballot watcher error", logging.Error(err))
			case <-fire:
				fire = nil
				select {
				case changes <- struct{}{}:
				default:
				}
			}
		}
	}()

	return changes, nil
}

func isBallotEvent(event fsnotify.Event, pattern string) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	if isHidden(name) {
		return false
	}
	ok, _ := filepath.Match(pattern, name)
	return ok
}
