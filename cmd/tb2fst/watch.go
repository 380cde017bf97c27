package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/glottolab/tbfst/internal/discover"
)

// settleDelay batches the event bursts editors produce when saving, so
// one save triggers one regeneration.
const settleDelay = 250 * time.Millisecond

// watcher folds input-change events into debounced regeneration runs.
type watcher struct {
	set    *discover.Set
	regen  func() error
	logger *slog.Logger
	settle time.Duration
}

// run consumes events until the context is cancelled or the channels
// close. Events for unrelated paths, and ops that never change input
// content, leave the settle timer alone.
func (w *watcher) run(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	timer := time.NewTimer(w.settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watch stopped")
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !w.set.Contains(ev.Name) {
				continue
			}
			w.logger.Debug("input changed", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(w.settle)
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "error", err)
		case <-timer.C:
			if err := w.regen(); err != nil {
				w.logger.Error("regeneration failed", "error", err)
			}
		}
	}
}

// watchAndRegen reruns the job whenever one of its inputs changes,
// until the context is cancelled.
func watchAndRegen(ctx context.Context, j *job, logger *slog.Logger) error {
	set, err := discover.NewSet(j.args)
	if err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	for _, root := range set.Roots() {
		if err := fw.Add(root); err != nil {
			return fmt.Errorf("watching %s: %w", root, err)
		}
	}
	logger.Info("watching for changes", "output", j.output)

	w := &watcher{
		set:    set,
		logger: logger,
		settle: settleDelay,
		regen: func() error {
			if err := j.generate(); err != nil {
				return err
			}
			logger.Info("grammar regenerated", "output", j.output)
			return nil
		},
	}
	return w.run(ctx, fw.Events, fw.Errors)
}
