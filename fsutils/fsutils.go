package fsutils

import (
	"errors"
	"os"
	"path/filepath"

	goerr "github.com/go-errors/errors"
)

var (
	// ErrEmptyPath is returned when given file/dir path is an empty string
	ErrEmptyPath = errors.New("cannot use empty string as path")

	// ErrWriteSz is returned when bytes written is not equal to data size
	ErrWriteSz = errors.New("bytes written != data size")

	// ErrFileDir is returned when a file was found instead of a directory
	ErrFileDir = errors.New("expecting a directory, got a file")

	// ErrDirFile is returned when a directory was found instead of a file
	ErrDirFile = errors.New("expecting a file, got a directory")
)

// EnsureDir makes sure that a directory exists at path
// It will attempt to create a directory if not exists
func EnsureDir(dpath string) (err error) {
	if dpath == "" {
		return goerr.Wrap(ErrEmptyPath, 0)
	}

	if info, err := os.Stat(dpath); err == nil && !info.IsDir() {
		return goerr.Wrap(ErrFileDir, 0)
	}

	if err := os.MkdirAll(dpath, 0755); err != nil {
		return goerr.Wrap(err, 0)
	}

	return nil
}

// WriteFile replaces the file at fpath with data. Data is written to a
// temporary file in the same directory, synced and renamed so readers
// never see a partially written file. Parent directories are created.
func WriteFile(fpath string, data []byte) (err error) {
	if fpath == "" {
		return goerr.Wrap(ErrEmptyPath, 0)
	}

	if info, err := os.Stat(fpath); err == nil && info.IsDir() {
		return goerr.Wrap(ErrDirFile, 0)
	}

	dpath := filepath.Dir(fpath)
	if err := EnsureDir(dpath); err != nil {
		return err
	}

	file, err := os.CreateTemp(dpath, "."+filepath.Base(fpath)+".*")
	if err != nil {
		return goerr.Wrap(err, 0)
	}

	tmp := file.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	n, err := file.Write(data)
	if err != nil {
		file.Close()
		return goerr.Wrap(err, 0)
	} else if n != len(data) {
		file.Close()
		return goerr.Wrap(ErrWriteSz, 0)
	}

	if err = file.Sync(); err != nil {
		file.Close()
		return goerr.Wrap(err, 0)
	}

	if err = file.Close(); err != nil {
		return goerr.Wrap(err, 0)
	}

	if err = os.Chmod(tmp, 0644); err != nil {
		return goerr.Wrap(err, 0)
	}

	if err = os.Rename(tmp, fpath); err != nil {
		return goerr.Wrap(err, 0)
	}

	return nil
}
