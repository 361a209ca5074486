package config

import (
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/scriptsync/scriptsync/pkg/errors"
)

const (
	// ProjectConfigName is the name of the per-project configuration file.
	// It's looked up in the directory the CLI is invoked from.
	ProjectConfigName = "scriptsync.yaml"

	// InitialProjectConfigVersion is the first version of the project
	// config. Config files that do not specify a version will default to
	// this version.
	InitialProjectConfigVersion = "v1alpha1"

	// SupportedProjectConfigVersion is the supported version of the project
	// config of the current scriptsync binary.
	SupportedProjectConfigVersion = "v1alpha1"
)

// ExtensionTable maps local filename extensions to the logical file types
// understood by the remote content API. Extensions include the leading dot
// and are matched case-insensitively.
type ExtensionTable struct {
	SourceCode []string `json:"sourceCode,omitempty"`
	Markup     []string `json:"markup,omitempty"`
	Manifest   []string `json:"manifest,omitempty"`
}

// Project contains the configuration for a single script project.
type Project struct {
	Version string `json:"version,omitempty"`

	// ScriptID identifies the project on the remote content API. Required.
	ScriptID string `json:"scriptId"`

	// SrcDir is the directory containing the project's files. Relative
	// paths are resolved against the directory holding the config file.
	// Defaults to that directory itself.
	SrcDir string `json:"srcDir,omitempty"`

	// Ignore is an ordered list of glob patterns. Paths matching a pattern
	// are excluded from the project unless a later `!` pattern re-includes
	// them.
	Ignore []string `json:"ignore,omitempty"`

	// FilePushOrder lists local paths that should be uploaded first, in
	// order. Files not listed sort after all listed files.
	FilePushOrder []string `json:"filePushOrder,omitempty"`

	// FileExtensions overrides the default extension table.
	FileExtensions ExtensionTable `json:"fileExtensions,omitempty"`

	// Flat disables recursing into subdirectories of SrcDir.
	Flat bool `json:"flat,omitempty"`

	// Only populated and consumed by scriptsync. Never set by the user.
	path string
}

func (p Project) getVersion() string {
	return p.Version
}

// GetPath returns the filepath that the project was parsed from. A getter
// method is used rather than making the field public so that it can't get
// set by the yaml unmarshalling.
func (p Project) GetPath() string {
	return p.path
}

// Recursive returns whether collection should descend into subdirectories.
func (p Project) Recursive() bool {
	return !p.Flat
}

// ParseProject parses the project configuration in the directory `dir`.
func ParseProject(dir string) (Project, error) {
	configPath := filepath.Join(dir, ProjectConfigName)
	project := Project{
		path:    configPath,
		Version: InitialProjectConfigVersion,
	}
	if err := parseConfig(configPath, &project, SupportedProjectConfigVersion); err != nil {
		if _, ok := err.(errors.FileNotFound); ok {
			return Project{}, errors.NewFriendlyError(
				"No project config found at %q.\n"+
					"Create a %s file with at least a scriptId field to get started.",
				configPath, ProjectConfigName)
		}
		return Project{}, errors.WithContext(err, "parse")
	}

	if project.ScriptID == "" {
		return Project{}, errors.MissingProjectConfig{Field: "scriptId"}
	}

	srcDir, err := homedir.Expand(project.SrcDir)
	if err != nil {
		return Project{}, errors.WithContext(err, "expand src dir")
	}
	if srcDir == "" {
		srcDir = "."
	}

	// Evaluate relative paths relative to the config path.
	if !filepath.IsAbs(srcDir) {
		srcDir = filepath.Join(dir, srcDir)
	}
	project.SrcDir = filepath.Clean(srcDir)
	return project, nil
}
