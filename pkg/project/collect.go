package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	goSync "sync"

	"github.com/spf13/afero"

	"github.com/scriptsync/scriptsync/pkg/config"
	"github.com/scriptsync/scriptsync/pkg/errors"
)

// readWorkers bounds the number of concurrent file reads during collection.
const readWorkers = 8

// Collect returns the project files under srcDir, classified and loaded with
// their contents. Files excluded by the ignore patterns are never read from
// disk. The returned list is sorted by LocalPath, so repeated calls over an
// unchanged tree return identical results.
func Collect(srcDir string, ignore *IgnoreMatcher, exts config.ExtensionTable,
	recursive bool) ([]File, error) {

	if _, err := fs.Stat(srcDir); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FileNotFound{Path: srcDir}
		}
		return nil, errors.WithContext(err, "stat src dir")
	}

	var candidates []candidateFile
	err := afero.Walk(fs, srcDir, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if fi.IsDir() {
			if !recursive && path != srcDir {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(srcDir, path)
		if err != nil {
			return errors.WithContext(err, "normalize path")
		}

		if !ignore.Included(relPath) {
			return nil
		}

		candidates = append(candidates, candidateFile{path: path, relPath: relPath})
		return nil
	})
	if err != nil {
		return nil, errors.WithContext(err, "walk src dir")
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].path < candidates[j].path
	})

	files, err := classify(candidates, exts)
	if err != nil {
		return nil, err
	}

	if err := readContents(files); err != nil {
		return nil, err
	}
	return files, nil
}

type candidateFile struct {
	path    string
	relPath string
}

// classify drops candidates that aren't part of the project, derives remote
// names, and rejects collisions. Because the candidates are sorted, a
// collision is always reported against the lexicographically later path.
func classify(candidates []candidateFile, exts config.ExtensionTable) ([]File, error) {
	var files []File
	seenSource := map[string]struct{}{}
	for _, candidate := range candidates {
		fileType := Classify(candidate.path, exts)
		if fileType == Unknown {
			continue
		}

		if fileType == SourceCode {
			key := sourceKey(candidate.relPath)
			if _, ok := seenSource[key]; ok {
				return nil, errors.FileConflict{Key: key, Path: candidate.path}
			}
			seenSource[key] = struct{}{}
		}

		files = append(files, File{
			LocalPath:  candidate.path,
			RemoteName: RemoteName(candidate.relPath, fileType),
			Type:       fileType,
		})
	}
	return files, nil
}

// sourceKey is the identity two source files may not share: their directory
// plus their basename with the extension stripped.
func sourceKey(relPath string) string {
	ext := filepath.Ext(relPath)
	return filepath.ToSlash(relPath[:len(relPath)-len(ext)])
}

// readContents loads the files' sources with a bounded worker pool. Each
// worker writes to a distinct index, so the final order is unaffected by
// read completion order.
func readContents(files []File) error {
	numWorkers := readWorkers
	if len(files) < numWorkers {
		numWorkers = len(files)
	}

	indexes := make(chan int, numWorkers*2)
	readErrors := make(chan error, numWorkers)

	var wg goSync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				contents, err := afero.ReadFile(fs, files[idx].LocalPath)
				if err != nil {
					readErrors <- errors.WithContext(err,
						fmt.Sprintf("read %q", files[idx].LocalPath))
					continue
				}
				files[idx].Source = string(contents)
			}
		}()
	}

	go func() {
		for i := range files {
			indexes <- i
		}
		close(indexes)

		wg.Wait()
		close(readErrors)
	}()

	for err := range readErrors {
		if err != nil {
			return err
		}
	}
	return nil
}
