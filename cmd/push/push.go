package push

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

// New creates a new `push` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Upload the local project files",
		Long: `Replace the remote project's contents with the local project files.

The push always uploads the full file set; the remote side performs a
full-content replace.`,
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

	pp := util.NewProgressPrinter(os.Stdout, "Pushing files")
	go pp.Run()
	files, err := sync.Push(remote.NewClient(httpClient), opts)
	pp.Stop()
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Println("No files to push.")
		return nil
	}

	for _, f := range files {
		fmt.Printf("└─ %s\n", f.LocalPath)
	}
	fmt.Printf("Pushed %d files.\n", len(files))
	return nil
}
