package login

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scriptsync/scriptsync/cmd/util"
	"github.com/scriptsync/scriptsync/pkg/auth"
	"github.com/scriptsync/scriptsync/pkg/config"
)

// New creates a new `login` command.
func New() *cobra.Command {
	var token string
	var showStatus bool
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store credentials for the remote content API",
		Run: func(_ *cobra.Command, _ []string) {
			if err := run(token, showStatus); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
	cmd.Flags().StringVar(&token, "token", "",
		"API token used to authenticate requests.")
	cmd.Flags().BoolVar(&showStatus, "status", false,
		"Report whether credentials are stored, without changing them.")
	return cmd
}

func run(token string, showStatus bool) error {
	if showStatus {
		if auth.LoggedIn() {
			fmt.Println("Logged in.")
		} else {
			fmt.Println("Not logged in.")
		}
		return nil
	}

	if err := auth.Login(token); err != nil {
		return err
	}

	path, err := config.GetCredentialsPath()
	if err == nil {
		fmt.Printf("Credentials saved to %s.\n", path)
	}
	fmt.Println("Successfully logged in.")
	return nil
}
