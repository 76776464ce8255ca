// FILE: store.go
package rollog

import (
	"os"
	"time"
)

// FileInfo carries the two file attributes the logger cares about.
type FileInfo struct {
	Size    int64
	ModTime time.Time
}

// FileStore is the filesystem capability consumed by the logger. All methods
// are fallible; the logger catches and logs failures instead of propagating
// them to callers.
type FileStore interface {
	Exists(path string) bool
	Stat(path string) (FileInfo, error)
	MkdirAll(path string) error
	ListDir(path string) ([]string, error)
	Append(path string, data []byte) error
	Rename(oldPath, newPath string) error
	Remove(path string) error
}

// OSFileStore implements FileStore using the standard os package.
type OSFileStore struct{}

func (OSFileStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSFileStore) Stat(path string) (FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{Size: info.Size(), ModTime: info.ModTime()}, nil
}

func (OSFileStore) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

// ListDir returns the names of regular entries in a directory, in the order
// the OS reports them.
func (OSFileStore) ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Append opens the file in append mode, creating it if absent, writes the
// data and closes the handle.
func (OSFileStore) Append(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	_, werr := file.Write(data)
	cerr := file.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

func (OSFileStore) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

func (OSFileStore) Remove(path string) error {
	return os.Remove(path)
}
