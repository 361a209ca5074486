package remote

import (
	"github.com/scriptsync/scriptsync/pkg/project"
)

// A File is one logical file record as the content API represents it.
type File struct {
	// Name is the file's extension-less logical name.
	Name string `json:"name"`

	// Type is the file's classification.
	Type project.FileType `json:"type"`

	// Source is the file's textual content.
	Source string `json:"source"`
}

// Gateway is the engine's view of the remote content API. Implementations
// own their own timeout and authentication behavior; the engine performs no
// retries.
type Gateway interface {
	// FetchContent returns the project's files at the given version.
	// Version 0 means the latest version.
	FetchContent(scriptID string, version int) ([]File, error)

	// ReplaceContent replaces the project's full file set. The call is
	// atomic from the engine's point of view: it either succeeds as a
	// whole or leaves the remote project untouched.
	ReplaceContent(scriptID string, files []File) error
}
