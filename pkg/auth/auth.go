package auth

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/scriptsync/scriptsync/pkg/config"
	"github.com/scriptsync/scriptsync/pkg/errors"
)

// Client returns an HTTP client that authenticates requests with the stored
// credentials. It fails with errors.NotAuthenticated before any network I/O
// when no credentials exist.
func Client() (*http.Client, error) {
	creds, err := config.ParseCredentials()
	if err != nil {
		return nil, err
	}

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.Token})
	return oauth2.NewClient(context.Background(), source), nil
}

// Login stores the given token so that later commands can authenticate.
func Login(token string) error {
	if token == "" {
		return errors.NewFriendlyError("A token is required.\n" +
			"Provide it with `scriptsync login --token <token>`")
	}

	if err := config.WriteCredentials(config.Credentials{Token: token}); err != nil {
		return errors.WithContext(err, "store credentials")
	}
	return nil
}

// LoggedIn reports whether usable credentials are stored on this machine.
func LoggedIn() bool {
	_, err := config.ParseCredentials()
	return err == nil
}
