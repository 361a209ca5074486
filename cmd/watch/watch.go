package watch

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scriptsync/scriptsync/cmd/util"
	"github.com/scriptsync/scriptsync/pkg/auth"
	"github.com/scriptsync/scriptsync/pkg/config"
	"github.com/scriptsync/scriptsync/pkg/fswatch"
	"github.com/scriptsync/scriptsync/pkg/remote"
	"github.com/scriptsync/scriptsync/pkg/sync"
)

// New creates a new `watch` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the source directory and push on changes",
		Long: `Push the project, then keep watching the source directory. Each batch of
changes triggers another push. Stop with Ctrl-C.`,
		Run: func(_ *cobra.Command, _ []string) {
			if err := run(); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
}

func run() error {
	project, err := config.ParseProject(".")
	if err != nil {
		return err
	}

	httpClient, err := auth.Client()
	if err != nil {
		return err
	}

	opts, err := sync.OptionsFromProject(project)
	if err != nil {
		return err
	}
	gateway := remote.NewClient(httpClient)

	// Push once up front so the watch starts from a synced state.
	if err := pushOnce(gateway, opts); err != nil {
		return err
	}

	// Pushes run on their own goroutine so that a slow upload never blocks
	// the watcher's event loop. Signals are coalesced: every push uploads
	// the full file set, so batches that pile up behind a slow push are
	// covered by the single pending signal.
	pushes := make(chan struct{}, 1)
	pusherDone := make(chan struct{})
	go func() {
		defer close(pusherDone)
		runPusher(pushes, func() {
			// A failed push only loses this batch; the watch keeps running
			// and the next change pushes the full file set again.
			if err := pushOnce(gateway, opts); err != nil {
				log.WithError(err).Error("Push failed")
			}
		})
	}()

	watcher, err := fswatch.Watch(opts.SrcDir, opts.Ignore, func(paths []string) {
		log.WithField("changed", len(paths)).Info("Detected changes")
		notifyPush(pushes)
	})
	if err != nil {
		close(pushes)
		<-pusherDone
		return err
	}

	fmt.Printf("Watching %s for changes. Press Ctrl-C to stop.\n", opts.SrcDir)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	<-signals

	watcher.Stop()
	close(pushes)
	<-pusherDone
	fmt.Println("Stopped watching.")
	return nil
}

// notifyPush requests a push without blocking. A signal already pending
// covers this batch too, since pushes always upload the full file set.
func notifyPush(pushes chan<- struct{}) {
	select {
	case pushes <- struct{}{}:
	default:
	}
}

// runPusher runs push once per pending signal until the channel is closed.
func runPusher(pushes <-chan struct{}, push func()) {
	for range pushes {
		push()
	}
}

func pushOnce(gateway remote.Gateway, opts sync.Options) error {
	files, err := sync.Push(gateway, opts)
	if err != nil {
		return err
	}
	fmt.Printf("Pushed %d files.\n", len(files))
	return nil
}
