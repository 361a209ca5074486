package version

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scriptsync/scriptsync/pkg/update"
	"github.com/scriptsync/scriptsync/pkg/version"
)

// New creates a new `version` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(version.Version)

			// The update check is best effort; a network failure shouldn't
			// make `version` fail.
			latest, newer, err := update.CheckLatest()
			if err != nil {
				log.WithError(err).Debug("Failed to check for updates")
				return
			}
			if newer {
				fmt.Printf("A newer release (%s) is available.\n", latest)
			}
		},
	}
}
