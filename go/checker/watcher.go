// Copyright 2025 The Spicekit Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package checker

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch checks path once immediately, then re-checks it on every write
// until ctx is cancelled, delivering each Result on the returned channel.
// The channel is closed when the watch ends.
//
// Writes are debounced: editors often emit several events per save, so a
// re-check runs only after the debounce interval passes without further
// writes.
func (c *Checker) Watch(ctx context.Context, path string, debounce time.Duration) (<-chan *Result, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the parent directory: editors that replace the file on save
	// would otherwise orphan a watch on the old inode.
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	results := make(chan *Result, 1)
	go c.watchLoop(ctx, w, path, debounce, results)
	return results, nil
}

func (c *Checker) watchLoop(ctx context.Context, w *fsnotify.Watcher, path string, debounce time.Duration, results chan<- *Result) {
	defer close(results)
	defer func() { _ = w.Close() }()

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)

	c.deliver(ctx, path, results)

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			c.logger.Warn("watch error", "path", path, "err", err)

		case <-timerC:
			timer = nil
			timerC = nil
			c.deliver(ctx, path, results)
		}
	}
}

func (c *Checker) deliver(ctx context.Context, path string, results chan<- *Result) {
	res, err := c.CheckFile(path)
	if err != nil {
		c.logger.Warn("recheck failed", "path", path, "err", err)
		return
	}

	select {
	case results <- res:
	case <-ctx.Done():
	}
}
