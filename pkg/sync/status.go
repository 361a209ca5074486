package sync

import (
	"github.com/scriptsync/scriptsync/pkg/errors"
	"github.com/scriptsync/scriptsync/pkg/project"
	"github.com/scriptsync/scriptsync/pkg/remote"
)

// Mocked out for unit testing.
var scanUntracked = project.Untracked

// Status reports the local files a push would upload, along with the local
// paths that exist on disk but aren't part of the project. The local
// collection and the remote fetch are independent, so they run concurrently.
func Status(gw remote.Gateway, opts Options) (changed []project.File,
	untracked []string, err error) {

	if err := opts.validate(); err != nil {
		return nil, nil, err
	}

	type collectResult struct {
		files []project.File
		err   error
	}
	type fetchResult struct {
		files []remote.File
		err   error
	}

	collectChan := make(chan collectResult, 1)
	fetchChan := make(chan fetchResult, 1)

	go func() {
		files, err := collectLocal(opts.SrcDir, opts.Ignore, opts.Extensions,
			opts.Recursive)
		collectChan <- collectResult{files, err}
	}()
	go func() {
		files, err := gw.FetchContent(opts.ScriptID, 0)
		fetchChan <- fetchResult{files, err}
	}()

	collected := <-collectChan
	fetched := <-fetchChan
	if collected.err != nil {
		return nil, nil, errors.WithContext(collected.err, "collect local files")
	}
	if fetched.err != nil {
		return nil, nil, errors.WithContext(fetched.err, "fetch content")
	}

	remoteAsLocal, err := mapRemote(fetched.files, opts)
	if err != nil {
		return nil, nil, err
	}

	changed = project.Changed(collected.files, remoteAsLocal)
	untracked, err = scanUntracked(opts.SrcDir, collected.files)
	if err != nil {
		return nil, nil, errors.WithContext(err, "scan untracked files")
	}
	return changed, untracked, nil
}
