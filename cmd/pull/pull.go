package pull

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scriptsync/scriptsync/cmd/util"
	"github.com/scriptsync/scriptsync/pkg/auth"
	"github.com/scriptsync/scriptsync/pkg/config"
	"github.com/scriptsync/scriptsync/pkg/remote"
	"github.com/scriptsync/scriptsync/pkg/sync"
)

// New creates a new `pull` command.
func New() *cobra.Command {
	var version int
	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Download the remote project files",
		Long: `Fetch the remote project's contents and write them under the source
directory, overwriting local files. Local files that don't exist remotely
are left alone.`,
		Run: func(_ *cobra.Command, _ []string) {
			if err := run(version); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
	cmd.Flags().IntVar(&version, "version", 0,
		"Project version to pull. Defaults to the latest version.")
	return cmd
}

func run(version int) error {
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

	pp := util.NewProgressPrinter(os.Stdout, "Pulling files")
	go pp.Run()
	files, err := sync.Pull(remote.NewClient(httpClient), opts, version)
	pp.Stop()
	if err != nil {
		return err
	}

	for _, f := range files {
		fmt.Printf("└─ %s\n", f.LocalPath)
	}
	fmt.Printf("Pulled %d files.\n", len(files))
	return nil
}
