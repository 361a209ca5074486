package errors

import (
	"fmt"
)

// NotAuthenticated represents when an operation requires credentials, but
// none are stored on the machine.
type NotAuthenticated struct{}

func (err NotAuthenticated) Error() string {
	return "not authenticated. Run `scriptsync login` first"
}

// MissingProjectConfig represents when an operation requires a configured
// project, but a required field is missing.
type MissingProjectConfig struct {
	Field string
}

func (err MissingProjectConfig) Error() string {
	return fmt.Sprintf("project configuration is missing required field: %s", err.Field)
}

// FileNotFound represents when we were unable to access a file because the
// path didn't exist.
type FileNotFound struct {
	Path string
}

func (err FileNotFound) Error() string {
	return fmt.Sprintf("%q does not exist", err.Path)
}

// FileConflict represents when two local files map to the same remote
// logical name.
type FileConflict struct {
	Key  string
	Path string
}

func (err FileConflict) Error() string {
	return fmt.Sprintf("%q conflicts with another file mapping to %q. "+
		"Rename or ignore one of them", err.Path, err.Key)
}

// InvalidFileType represents when a default extension was requested for a
// file type we don't recognize. It indicates a bug rather than user error.
type InvalidFileType struct {
	Type string
}

func (err InvalidFileType) Error() string {
	return fmt.Sprintf("invalid file type: %q", err.Type)
}

// SyntaxError represents a push that the remote API rejected because a file
// failed to compile. Snippet contains the rendered source context around the
// offending line.
type SyntaxError struct {
	Name    string
	Line    int
	File    string
	Snippet string
	Cause   error
}

func (err SyntaxError) Error() string {
	return fmt.Sprintf("%s - %q", err.Name, fmt.Sprintf("%s:%d", err.File, err.Line))
}

// FriendlyMessage returns the located error along with the source snippet.
func (err SyntaxError) FriendlyMessage() string {
	return err.Error() + "\n" + err.Snippet
}

// APIError represents any other rejection from the remote content API.
type APIError struct {
	Status  int
	Message string
}

func (err APIError) Error() string {
	if err.Status == 0 {
		return err.Message
	}
	return fmt.Sprintf("%s (status %d)", err.Message, err.Status)
}
