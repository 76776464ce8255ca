// FILE: state.go
package rollog

import (
	"path/filepath"
)

// loggerState is the rotation bookkeeping for the current configuration.
// It is rebuilt wholesale by recoverState on every (re)configure and is the
// single source of truth for size and index tracking.
type loggerState struct {
	livePath      string // {directory}/{prefix}-latest.log
	dateStamp     string // Calendar date as of the last rotation check
	currentSize   int64  // Bytes appended to the live file since last rotation
	rotationIndex uint64 // Highest rotation index used so far, monotonic
}

// recoverState rebuilds the logger state from what is on disk so a restart
// resumes size tracking and never reuses an existing rotated filename.
// File store errors degrade to zero values; recovery never fails.
func (l *Logger) recoverState() {
	cfg := l.cfg
	dir := cfg.directory()

	if cfg.Directory != "" {
		if err := l.store.MkdirAll(cfg.Directory); err != nil {
			l.internalLog("failed to create log directory '%s': %v\n", cfg.Directory, err)
		}
	}

	st := loggerState{
		livePath:  filepath.Join(dir, liveFileName(cfg.Prefix)),
		dateStamp: l.now().Format(dateStampFormat),
	}

	if info, err := l.store.Stat(st.livePath); err == nil {
		st.currentSize = info.Size
	}

	if names, err := l.store.ListDir(dir); err == nil {
		for _, name := range names {
			if index, ok := parseRotationIndex(name, cfg.Prefix); ok && index > st.rotationIndex {
				st.rotationIndex = index
			}
		}
	}

	l.state = st
}
