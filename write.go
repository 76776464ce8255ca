// FILE: write.go
package rollog

// Write appends one formatted entry to the live log file at the given level.
// The rotation decision runs before the entry is formatted and written.
// A logger that has not been configured drops the entry with a warning.
func (l *Logger) Write(level int64, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.write(level, message, false)
}

// Debug logs a tagged message at debug level
func (l *Logger) Debug(tag string, args ...any) {
	l.logTagged(LevelDebug, tag, args)
}

// Info logs a tagged message at info level
func (l *Logger) Info(tag string, args ...any) {
	l.logTagged(LevelInfo, tag, args)
}

// Warn logs a tagged message at warning level
func (l *Logger) Warn(tag string, args ...any) {
	l.logTagged(LevelWarn, tag, args)
}

// Error logs a tagged message at error level
func (l *Logger) Error(tag string, args ...any) {
	l.logTagged(LevelError, tag, args)
}

// logTagged prefixes the message with the tag and routes it through the
// write path with console mirroring enabled.
func (l *Logger) logTagged(level int64, tag string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.write(level, tag+": "+formatArgs(args), true)
}

// write is the core write path. Caller must hold the mutex.
// Append failures are logged and the entry is dropped; size tracking is
// only advanced on a successful append.
func (l *Logger) write(level int64, message string, mirror bool) {
	if l.cfg == nil {
		l.internalLog("write before configure, entry dropped\n")
		return
	}
	if level < l.cfg.Level {
		return
	}

	l.rotateIfNeeded()

	entry := formatEntry(l.now(), level, message)

	// The mirror is a diagnostic aid; its outcome never affects the file path
	if mirror && l.console != nil {
		_, _ = l.console.Write(entry)
	}

	if err := l.store.Append(l.state.livePath, entry); err != nil {
		l.internalLog("failed to append to log file '%s': %v\n", l.state.livePath, err)
		return
	}
	l.state.currentSize += int64(len(entry))
}
