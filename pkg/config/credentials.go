package config

import (
	"github.com/ghodss/yaml"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"

	"github.com/scriptsync/scriptsync/pkg/errors"
)

const (
	// CredentialsPath is the default path to the stored credentials.
	CredentialsPath = "~/.scriptsync.yaml"

	// InitialCredentialsVersion is the first version of the credentials
	// file. Files that do not specify a version default to this version.
	InitialCredentialsVersion = "v1alpha1"

	// SupportedCredentialsVersion is the supported version of the
	// credentials file of the current scriptsync binary.
	SupportedCredentialsVersion = "v1alpha1"
)

// Credentials contains the token used to authenticate against the remote
// content API.
type Credentials struct {
	Version string `json:"version,omitempty"`
	Token   string `json:"token"`
}

func (c Credentials) getVersion() string {
	return c.Version
}

// homedirExpand will be overridden in mock tests.
var homedirExpand = homedir.Expand

// ParseCredentials attempts to parse the credentials stored in the default
// path. A missing file is returned as errors.NotAuthenticated so that
// commands can fail before doing any I/O.
func ParseCredentials() (Credentials, error) {
	path, err := GetCredentialsPath()
	if err != nil {
		return Credentials{}, errors.WithContext(err, "expand credentials path")
	}

	creds := Credentials{Version: InitialCredentialsVersion}
	if err := parseConfig(path, &creds, SupportedCredentialsVersion); err != nil {
		if _, ok := err.(errors.FileNotFound); ok {
			return Credentials{}, errors.NotAuthenticated{}
		}
		return Credentials{}, errors.WithContext(err, "parse")
	}

	if creds.Token == "" {
		return Credentials{}, errors.NotAuthenticated{}
	}
	return creds, nil
}

// WriteCredentials writes the given credentials to disk.
func WriteCredentials(creds Credentials) error {
	creds.Version = SupportedCredentialsVersion
	path, err := GetCredentialsPath()
	if err != nil {
		return errors.WithContext(err, "expand credentials path")
	}

	yamlBytes, err := yaml.Marshal(creds)
	if err != nil {
		return errors.WithContext(err, "marshal")
	}

	// The file contains a secret, so don't make it world readable.
	if err := afero.WriteFile(fs, path, yamlBytes, 0600); err != nil {
		return errors.WithContext(err, "write")
	}
	return nil
}

// GetCredentialsPath returns the path to the user's stored credentials. This
// path is expanded, so it can be directly passed to file operations.
func GetCredentialsPath() (string, error) {
	return homedirExpand(CredentialsPath)
}
