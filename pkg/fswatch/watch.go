package fswatch

import (
	"fmt"
	"os"
	"path/filepath"
	goSync "sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/scriptsync/scriptsync/pkg/errors"
	"github.com/scriptsync/scriptsync/pkg/project"
)

// QuietPeriod is how long the tree must stay unchanged before a batch of
// changes is delivered.
const QuietPeriod = 300 * time.Millisecond

// Mocked out for unit testing.
var (
	fs    = afero.NewOsFs()
	clock = clockwork.NewRealClock()
)

// A Watcher delivers debounced batches of changed paths under a source
// directory. A stopped watcher can't be restarted; create a new one instead.
type Watcher struct {
	srcDir   string
	ignore   *project.IgnoreMatcher
	onChange func([]string)

	notify   *fsnotify.Watcher
	stopOnce goSync.Once
	stop     chan struct{}
	done     chan struct{}
}

// Watch registers for change events under srcDir and starts delivering
// batches to onChange. By the time Watch returns, the startup scan has
// finished; no events are delivered before that. The callback receives
// paths relative to srcDir, runs on the watcher's event loop, and must not
// block for long. A panicking callback only loses its own batch.
func Watch(srcDir string, ignore *project.IgnoreMatcher,
	onChange func([]string)) (*Watcher, error) {

	notify, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WithContext(err, "create watcher")
	}

	if err := addRecursive(notify, srcDir); err != nil {
		// Close the watcher so that we release the file handles for the
		// previously added paths.
		if closeErr := notify.Close(); closeErr != nil {
			log.WithError(closeErr).Warn("Failed to close file watcher")
		}
		return nil, err
	}

	w := &Watcher{
		srcDir:   srcDir,
		ignore:   ignore,
		onChange: onChange,
		notify:   notify,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Stop tears down the watch. No callbacks are invoked after it returns.
// It's safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
	})
	<-w.done
}

// addRecursive registers dir and all of its subdirectories. fsnotify doesn't
// watch directories recursively, so we walk the tree and add each one.
func addRecursive(notify *fsnotify.Watcher, dir string) error {
	err := afero.Walk(fs, dir, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() {
			return nil
		}
		if err := notify.Add(path); err != nil {
			return errors.WithContext(err, fmt.Sprintf("watch %q", path))
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(errors.RootCause(err)) {
			return errors.FileNotFound{Path: dir}
		}
		return errors.WithContext(err, "walk src dir")
	}
	return nil
}

// run is the watcher's event loop. The debouncer is owned by this goroutine
// and never touched from anywhere else, so no locking is needed.
func (w *Watcher) run() {
	defer close(w.done)

	debounce := newDebouncer(clock, QuietPeriod)
	for {
		select {
		case event, ok := <-w.notify.Events:
			if !ok {
				return
			}
			w.handleEvent(event, debounce)
		case <-debounce.C():
			w.deliver(debounce.Flush())
		case err, ok := <-w.notify.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("File watch error")
		case <-w.stop:
			debounce.Cancel()
			if err := w.notify.Close(); err != nil {
				log.WithError(err).Warn("Failed to close file watcher")
			}
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event, debounce *debouncer) {
	// Register newly created directories to keep the watch recursive.
	if event.Op&fsnotify.Create != 0 {
		if fi, err := fs.Stat(event.Name); err == nil && fi.IsDir() {
			if err := w.notify.Add(event.Name); err != nil {
				log.WithError(err).WithField("path", event.Name).Warn(
					"Failed to watch new directory")
			}
			return
		}
	}

	relPath, err := filepath.Rel(w.srcDir, event.Name)
	if err != nil {
		return
	}
	if !w.ignore.Included(relPath) {
		return
	}

	// Paths that can't be stat'd (e.g. just removed) or that aren't plain
	// files never reach the debounce stage.
	fi, err := fs.Stat(event.Name)
	if err != nil || !fi.Mode().IsRegular() {
		return
	}

	debounce.Observe(filepath.ToSlash(relPath))
}

func (w *Watcher) deliver(batch []string) {
	if len(batch) == 0 {
		return
	}

	// A panicking callback is confined to this one batch.
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("Change callback panicked")
		}
	}()
	w.onChange(batch)
}
