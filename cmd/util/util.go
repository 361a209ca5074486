package util

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/scriptsync/scriptsync/pkg/errors"
)

// friendlyError is implemented by errors whose message should be shown to
// the user as-is, without the wrapping context chain.
type friendlyError interface {
	FriendlyMessage() string
}

// HandleFatalError prints the error and exits. Friendly errors are printed
// without their context chain.
func HandleFatalError(err error) {
	if friendly, ok := errors.RootCause(err).(friendlyError); ok {
		fmt.Fprintln(os.Stderr, friendly.FriendlyMessage())
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

// HandlePanic recovers from a panic, prints the stack trace, and exits
// non-zero. It's deferred from main so that crashes are reported cleanly.
func HandlePanic() {
	r := recover()
	if r == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "scriptsync crashed: %v\n\n%s\n", r, debug.Stack())
	fmt.Fprintln(os.Stderr, "This is a bug. Please report it at "+
		"https://github.com/scriptsync/scriptsync/issues")
	os.Exit(1)
}

// ProgressPrinter prints a message followed by a dot every second until
// stopped, so long-running commands don't look stalled.
type ProgressPrinter struct {
	out     io.Writer
	message string
	stop    chan struct{}
	done    chan struct{}
}

// NewProgressPrinter creates a new ProgressPrinter. The caller should invoke
// Run in a goroutine, and Stop when the operation finishes.
func NewProgressPrinter(out io.Writer, message string) *ProgressPrinter {
	return &ProgressPrinter{
		out:     out,
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Run prints the progress message until Stop is called.
func (pp *ProgressPrinter) Run() {
	defer close(pp.done)

	fmt.Fprint(pp.out, pp.message)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			fmt.Fprint(pp.out, ".")
		case <-pp.stop:
			fmt.Fprintln(pp.out)
			return
		}
	}
}

// Stop terminates the printer and waits for it to finish writing.
func (pp *ProgressPrinter) Stop() {
	close(pp.stop)
	<-pp.done
}
