package config

import (
	"os"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptsync/scriptsync/pkg/errors"
)

const testCredentialsPath = "/home/user/.scriptsync.yaml"

func setupCredentials(t *testing.T) {
	fs = afero.NewMemMapFs()
	homedirExpand = func(string) (string, error) {
		return testCredentialsPath, nil
	}
	t.Cleanup(func() {
		homedirExpand = homedir.Expand
	})
}

func TestCredentialsRoundTrip(t *testing.T) {
	setupCredentials(t)

	require.NoError(t, WriteCredentials(Credentials{Token: "secret-token"}))

	creds, err := ParseCredentials()
	require.NoError(t, err)
	assert.Equal(t, "secret-token", creds.Token)
	assert.Equal(t, SupportedCredentialsVersion, creds.Version)

	// The credentials file holds a secret and must not be world readable.
	fi, err := fs.Stat(testCredentialsPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fi.Mode().Perm())
}

func TestParseCredentialsMissingFile(t *testing.T) {
	setupCredentials(t)

	_, err := ParseCredentials()
	assert.Equal(t, errors.NotAuthenticated{}, err)
}

func TestParseCredentialsEmptyToken(t *testing.T) {
	setupCredentials(t)
	require.NoError(t, afero.WriteFile(fs, testCredentialsPath,
		[]byte("version: v1alpha1\ntoken: \"\"\n"), 0600))

	_, err := ParseCredentials()
	assert.Equal(t, errors.NotAuthenticated{}, err)
}

func TestParseCredentialsIncompatibleVersion(t *testing.T) {
	setupCredentials(t)
	require.NoError(t, afero.WriteFile(fs, testCredentialsPath,
		[]byte("version: v9\ntoken: secret-token\n"), 0600))

	_, err := ParseCredentials()
	require.Error(t, err)
	_, ok := errors.RootCause(err).(incompatibleVersionError)
	assert.True(t, ok)
}
