package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scriptsync/scriptsync/cmd/login"
	"github.com/scriptsync/scriptsync/cmd/pull"
	"github.com/scriptsync/scriptsync/cmd/push"
	"github.com/scriptsync/scriptsync/cmd/status"
	"github.com/scriptsync/scriptsync/cmd/util"
	versionCmd "github.com/scriptsync/scriptsync/cmd/version"
	"github.com/scriptsync/scriptsync/cmd/watch"
)

// verboseLogKey is the environment variable used to enable verbose logging.
// When it's set to `true`, Debug events are logged, rather than just Info
// and above.
const verboseLogKey = "SCRIPTSYNC_LOG_VERBOSE"

// Execute runs the main CLI process.
func Execute() {
	if os.Getenv(verboseLogKey) == "true" {
		log.SetLevel(log.DebugLevel)
	}

	rootCmd := &cobra.Command{
		Use:          "scriptsync",
		Short:        "Sync script projects between your machine and the remote content API",
		SilenceUsage: true,

		// The call to rootCmd.Execute prints the error, so we silence errors
		// here to avoid double printing.
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		login.New(),
		pull.New(),
		push.New(),
		status.New(),
		versionCmd.New(),
		watch.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		util.HandleFatalError(err)
	}
}
