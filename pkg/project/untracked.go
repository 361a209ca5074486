package project

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/scriptsync/scriptsync/pkg/errors"
)

// Untracked walks srcDir without any filtering and reports the paths that
// exist locally but aren't part of the project. A lone untracked file in an
// otherwise tracked directory is reported by its file path. When a whole
// subtree is untracked, only its shallowest untracked directory is reported,
// with a trailing separator. The result is sorted and deduplicated.
func Untracked(srcDir string, tracked []File) ([]string, error) {
	trackedPaths := map[string]struct{}{}
	trackedAncestors := map[string]struct{}{
		filepath.Clean(srcDir): {},
	}
	for _, f := range tracked {
		trackedPaths[f.LocalPath] = struct{}{}
		for dir := filepath.Dir(f.LocalPath); len(dir) >= len(srcDir); dir = filepath.Dir(dir) {
			trackedAncestors[dir] = struct{}{}
			if dir == filepath.Dir(dir) {
				break
			}
		}
	}

	reported := map[string]struct{}{}
	err := afero.Walk(fs, srcDir, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return nil
		}
		if _, ok := trackedPaths[path]; ok {
			return nil
		}

		dir := filepath.Dir(path)
		if _, ok := trackedAncestors[dir]; ok {
			// The file's own directory contains tracked files, so report
			// just the file.
			reported[path] = struct{}{}
			return nil
		}

		// Climb to the shallowest directory that contains no tracked files.
		for {
			parent := filepath.Dir(dir)
			if _, ok := trackedAncestors[parent]; ok || parent == dir {
				break
			}
			dir = parent
		}
		reported[dir+string(filepath.Separator)] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, errors.WithContext(err, "walk src dir")
	}

	var paths []string
	for path := range reported {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}
