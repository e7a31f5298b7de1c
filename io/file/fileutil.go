// Package file holds the filesystem helpers used for the downloaded
// artifacts: path expansion, parent directory creation and truncating writes.
package file

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// ReadWritePermissions for files written by credfetch. The external
	// scripts read them, so they are not restricted to the owner.
	ReadWritePermissions = os.FileMode(0644)
	// ReadWriteExecutePermissions for directories created by credfetch.
	ReadWriteExecutePermissions = os.FileMode(0755)
)

// ExpandPath given a string which may be a relative path.
// 1. replace tilde with users home dir
// 2. expands embedded environment variables
// 3. cleans the path, e.g. /a/b/../c -> /a/c
// Note, it has limitations, e.g. ~someuser/tmp will not be expanded
func ExpandPath(p string) (string, error) {
	if strings.HasPrefix(p, "~/") || strings.HasPrefix(p, "~\\") {
		if home := HomeDir(); home != "" {
			p = home + p[1:]
		}
	}
	return filepath.Abs(filepath.Clean(os.ExpandEnv(p)))
}

// HomeDir for a user.
func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

// HasDir checks for the existence of a directory.
func HasDir(dirPath string) (bool, error) {
	fullPath, err := ExpandPath(dirPath)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(fullPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if info == nil {
		return false, err
	}
	return info.IsDir(), err
}

// FileExists returns true if a file is not a directory and exists
// at the specified path.
func FileExists(filename string) bool {
	filePath, err := ExpandPath(filename)
	if err != nil {
		return false
	}
	info, err := os.Stat(filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Info("Checking for file existence returned an error")
		}
		return false
	}
	return info != nil && !info.IsDir()
}

// MkdirAll creates a directory and any missing parents.
func MkdirAll(dirPath string) error {
	expanded, err := ExpandPath(dirPath)
	if err != nil {
		return err
	}
	exists, err := HasDir(expanded)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return os.MkdirAll(expanded, ReadWriteExecutePermissions)
}

// Create opens the file at the given path for writing, truncating any
// previous content. Missing parent directories are created.
func Create(filePath string) (*os.File, error) {
	expanded, err := ExpandPath(filePath)
	if err != nil {
		return nil, err
	}
	if err := MkdirAll(filepath.Dir(expanded)); err != nil {
		return nil, errors.Wrapf(err, "could not create parent directory of %s", expanded)
	}
	return os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, ReadWritePermissions) // #nosec G304
}

// WriteFile writes data to the given path, overwriting any existing file.
func WriteFile(filePath string, data []byte) error {
	f, err := Create(filePath)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
