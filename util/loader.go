package util

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// FindImageFiles walks dir recursively and returns the paths of every
// regular file whose extension matches ext exactly (including the leading
// dot; the comparison is case-sensitive). The result is sorted lexically so
// batch runs are deterministic.
//
// Arguments:
// - dir: Root directory to walk.
// - ext: File extension filter, e.g. ".png".
//
// Returns:
// - []string: Sorted matching paths.
// - error: Error if the walk fails.
func FindImageFiles(dir string, ext string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(d.Name()) == ext {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", dir)
	}

	sort.Strings(paths)
	return paths, nil
}
