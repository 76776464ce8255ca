// FILE: rotate.go
package rollog

import (
	"path/filepath"
)

// rotateIfNeeded runs the rotation decision ahead of a write. A rotation is
// triggered by a calendar day change (when daily rolling is enabled) or by
// the live file size reaching the configured maximum. At most one rotation
// occurs per write even when both conditions hold.
func (l *Logger) rotateIfNeeded() {
	cfg := l.cfg
	today := l.now().Format(dateStampFormat)

	// The rotated file is named for the day its entries belong to, so the
	// stamp is captured before the day-change update.
	stamp := l.state.dateStamp

	rotate := false
	if cfg.DailyRolling && today != l.state.dateStamp {
		l.state.dateStamp = today
		rotate = true
	}
	if !rotate && cfg.MaxFileSize > 0 && l.state.currentSize >= cfg.MaxFileSize {
		rotate = true
	}
	if !rotate {
		return
	}

	l.rotate(stamp)
}

// rotate renames the live file to the next rotated name and resets size
// tracking. A missing live file skips the rename; a failed rename is logged
// and the size is still reset so logging continues against the live name.
func (l *Logger) rotate(dateStamp string) {
	cfg := l.cfg

	l.state.rotationIndex++
	name := rotatedFileName(cfg.Prefix, l.state.rotationIndex, dateStamp, cfg.DailyRolling)
	target := filepath.Join(cfg.directory(), name)

	if l.store.Exists(l.state.livePath) {
		if err := l.store.Rename(l.state.livePath, target); err != nil {
			l.internalLog("failed to rotate log file from '%s' to '%s': %v\n",
				l.state.livePath, target, err)
		}
	}

	l.state.currentSize = 0
	l.enforceRetention()
}
