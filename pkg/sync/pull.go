package sync

import (
	"fmt"
	"path/filepath"
	goSync "sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/scriptsync/scriptsync/pkg/errors"
	"github.com/scriptsync/scriptsync/pkg/project"
	"github.com/scriptsync/scriptsync/pkg/remote"
)

// writeWorkers bounds the number of concurrent file writes during a pull.
const writeWorkers = 8

// Pull fetches the remote project's files and materializes them under the
// source directory, overwriting existing local files. Version 0 pulls the
// latest version. Records with an empty source are skipped, so no zero-byte
// files are created. There is no rollback on failure.
func Pull(gw remote.Gateway, opts Options, version int) ([]project.File, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	remoteFiles, err := gw.FetchContent(opts.ScriptID, version)
	if err != nil {
		return nil, errors.WithContext(err, "fetch content")
	}

	files, err := mapRemote(remoteFiles, opts)
	if err != nil {
		return nil, err
	}

	var toWrite []project.File
	for _, f := range files {
		if f.Source == "" {
			log.WithField("file", f.RemoteName).Debug("Skipping file with empty source")
			continue
		}
		toWrite = append(toWrite, f)
	}

	if err := materialize(toWrite); err != nil {
		return nil, err
	}
	return toWrite, nil
}

// mapRemote maps each remote record to the local path it materializes to:
// srcDir/<remoteName><extension for the file's type>.
func mapRemote(remoteFiles []remote.File, opts Options) ([]project.File, error) {
	files := make([]project.File, 0, len(remoteFiles))
	for _, f := range remoteFiles {
		ext, err := project.DefaultExtension(f.Type, opts.Extensions)
		if err != nil {
			return nil, errors.WithContext(err, fmt.Sprintf("map %q", f.Name))
		}

		files = append(files, project.File{
			LocalPath:  filepath.Join(opts.SrcDir, filepath.FromSlash(f.Name)+ext),
			RemoteName: f.Name,
			Type:       f.Type,
			Source:     f.Source,
		})
	}
	return files, nil
}

// materialize writes the files with a bounded worker pool. Completion order
// isn't guaranteed, but every write has finished by the time it returns.
func materialize(files []project.File) error {
	numWorkers := writeWorkers
	if len(files) < numWorkers {
		numWorkers = len(files)
	}

	toWriteChan := make(chan project.File, numWorkers*2)
	writeErrors := make(chan error, numWorkers)

	var wg goSync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range toWriteChan {
				writeErrors <- writeFile(f)
			}
		}()
	}

	go func() {
		for _, f := range files {
			toWriteChan <- f
		}
		close(toWriteChan)

		wg.Wait()
		close(writeErrors)
	}()

	// Drain every result so the workers always finish before we return,
	// even when one of them failed.
	var firstErr error
	for err := range writeErrors {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func writeFile(f project.File) error {
	if err := fs.MkdirAll(filepath.Dir(f.LocalPath), 0755); err != nil {
		return errors.WithContext(err, fmt.Sprintf("create directory for %q", f.LocalPath))
	}
	if err := afero.WriteFile(fs, f.LocalPath, []byte(f.Source), 0644); err != nil {
		return errors.WithContext(err, fmt.Sprintf("write %q", f.LocalPath))
	}
	return nil
}
