package status

import (
	"fmt"

	"github.com/buger/goterm"
	"github.com/spf13/cobra"

	"github.com/scriptsync/scriptsync/cmd/util"
	"github.com/scriptsync/scriptsync/pkg/auth"
	"github.com/scriptsync/scriptsync/pkg/config"
	"github.com/scriptsync/scriptsync/pkg/remote"
	"github.com/scriptsync/scriptsync/pkg/sync"
)

// New creates a new `status` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show what a push would upload",
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

	changed, untracked, err := sync.Status(remote.NewClient(httpClient), opts)
	if err != nil {
		return err
	}

	if len(changed) == 0 {
		fmt.Println("Up to date. A push would upload nothing.")
	} else {
		fmt.Println("Files a push would upload:")
		for _, f := range changed {
			fmt.Printf("  %s %s\n", goterm.Color("M", goterm.YELLOW), f.LocalPath)
		}
	}

	if len(untracked) != 0 {
		fmt.Println("Untracked paths:")
		for _, path := range untracked {
			fmt.Printf("  %s %s\n", goterm.Color("?", goterm.RED), path)
		}
	}
	return nil
}
