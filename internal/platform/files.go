package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// Exists reports whether anything (file, directory, or other) is present at
// path. Symlinks are followed, so a dangling link does not exist.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureParent creates the parent directory of path, including intermediate
// directories.
func EnsureParent(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// WriteFile writes data to path, creating parent directories and replacing
// any existing regular file.
func WriteFile(path string, data []byte) error {
	if err := EnsureParent(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Touch makes sure an empty file exists at path. Parent directories are
// created as needed. An existing regular file is left as is; anything else
// in the way (a directory, for example) is an error.
func Touch(path string) error {
	if err := EnsureParent(path); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, FilePerm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return f.Close()
}
