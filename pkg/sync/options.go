package sync

import (
	"path/filepath"

	"github.com/scriptsync/scriptsync/pkg/config"
	"github.com/scriptsync/scriptsync/pkg/errors"
	"github.com/scriptsync/scriptsync/pkg/project"
)

// Options carries the project configuration the pipelines need.
type Options struct {
	ScriptID   string
	SrcDir     string
	Ignore     *project.IgnoreMatcher
	Extensions config.ExtensionTable
	PushOrder  []string
	Recursive  bool
}

// OptionsFromProject compiles the project configuration into pipeline
// options.
func OptionsFromProject(proj config.Project) (Options, error) {
	ignore, err := project.CompileIgnore(proj.Ignore)
	if err != nil {
		return Options{}, errors.WithContext(err, "compile ignore patterns")
	}

	return Options{
		ScriptID:   proj.ScriptID,
		SrcDir:     proj.SrcDir,
		Ignore:     ignore,
		Extensions: proj.FileExtensions,
		PushOrder:  proj.FilePushOrder,
		Recursive:  proj.Recursive(),
	}, nil
}

// validate fails fast on an incomplete configuration, before any I/O.
func (opts Options) validate() error {
	if opts.ScriptID == "" {
		return errors.MissingProjectConfig{Field: "scriptId"}
	}
	if opts.SrcDir == "" {
		return errors.MissingProjectConfig{Field: "srcDir"}
	}
	return nil
}

// orderRank returns the file's position in the push order, or len(order)
// when the file isn't listed. Order entries are matched against both the
// file's full local path and its path relative to the source directory.
func (opts Options) orderRank(f project.File) int {
	fullPath := filepath.ToSlash(f.LocalPath)
	relPath := fullPath
	if rel, err := filepath.Rel(opts.SrcDir, f.LocalPath); err == nil {
		relPath = filepath.ToSlash(rel)
	}

	for i, entry := range opts.PushOrder {
		entry = filepath.ToSlash(entry)
		if entry == fullPath || entry == relPath {
			return i
		}
	}
	return len(opts.PushOrder)
}
