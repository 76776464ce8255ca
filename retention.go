// FILE: retention.go
package rollog

import (
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// enforceRetention deletes the oldest rotated files until their count drops
// below MaxFiles. Invoked after every rotation. The bound is inclusive:
// while rotating, rotated files are removed while count >= MaxFiles, so the
// steady state is the live file plus MaxFiles-1 rotated files. Deletion
// failures are logged and do not abort the remaining deletions.
func (l *Logger) enforceRetention() {
	cfg := l.cfg
	dir := cfg.directory()

	names, err := l.store.ListDir(dir)
	if err != nil {
		l.internalLog("failed to read log directory '%s' for retention: %v\n", dir, err)
		return
	}

	live := liveFileName(cfg.Prefix)

	type logFileMeta struct {
		name    string
		modTime time.Time
	}
	var rotated []logFileMeta
	for _, name := range names {
		if name == live || !strings.HasSuffix(name, logExtension) {
			continue
		}
		info, err := l.store.Stat(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		rotated = append(rotated, logFileMeta{name: name, modTime: info.ModTime})
	}

	// Oldest first; ties keep the listing order
	sort.SliceStable(rotated, func(i, j int) bool {
		return rotated[i].modTime.Before(rotated[j].modTime)
	})

	for int64(len(rotated)) >= cfg.MaxFiles && len(rotated) > 0 {
		oldest := rotated[0]
		rotated = rotated[1:]
		path := filepath.Join(dir, oldest.name)
		if err := l.store.Remove(path); err != nil {
			l.internalLog("failed to remove old log file '%s': %v\n", path, err)
		}
	}
}
