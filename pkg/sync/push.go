package sync

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/scriptsync/scriptsync/pkg/errors"
	"github.com/scriptsync/scriptsync/pkg/project"
	"github.com/scriptsync/scriptsync/pkg/remote"
)

// Mocked out for unit testing.
var collectLocal = project.Collect

// Push uploads the local project files, replacing the remote project's full
// content. It returns the files in the order they were sent. An empty local
// project returns an empty list without calling the remote API.
func Push(gw remote.Gateway, opts Options) ([]project.File, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	files, err := collectLocal(opts.SrcDir, opts.Ignore, opts.Extensions, opts.Recursive)
	if err != nil {
		return nil, errors.WithContext(err, "collect local files")
	}
	if len(files) == 0 {
		log.WithField("srcDir", opts.SrcDir).Debug("No files to push")
		return nil, nil
	}

	orderFiles(files, opts)

	if err := gw.ReplaceContent(opts.ScriptID, toRemote(files)); err != nil {
		apiErr, ok := errors.RootCause(err).(errors.APIError)
		if !ok {
			return nil, errors.WithContext(err, "replace content")
		}

		if syntaxErr, ok := extractSyntaxError(apiErr, files); ok {
			return nil, syntaxErr
		}
		return nil, apiErr
	}
	return files, nil
}

// orderFiles sorts files per the push order. Unlisted files sort after all
// listed files; the sort is stable, so they keep their path order.
func orderFiles(files []project.File, opts Options) {
	sort.SliceStable(files, func(i, j int) bool {
		return opts.orderRank(files[i]) < opts.orderRank(files[j])
	})
}

func toRemote(files []project.File) []remote.File {
	remoteFiles := make([]remote.File, 0, len(files))
	for _, f := range files {
		remoteFiles = append(remoteFiles, remote.File{
			Name:   f.RemoteName,
			Type:   f.Type,
			Source: f.Source,
		})
	}
	return remoteFiles
}
