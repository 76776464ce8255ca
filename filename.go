// FILE: filename.go
package rollog

import (
	"strconv"
	"strings"
)

const (
	logExtension = ".log"
	liveSuffix   = "-latest" + logExtension
	// Calendar date stamp used in daily rotated filenames
	dateStampFormat = "2006-01-02"
)

// liveFileName returns the name of the file actively appended to.
func liveFileName(prefix string) string {
	return prefix + liveSuffix
}

// rotatedFileName builds the name a live file is renamed to on rotation.
// Daily rolling embeds the date stamp of the day the entries belong to.
func rotatedFileName(prefix string, index uint64, dateStamp string, dailyRolling bool) string {
	if dailyRolling {
		return prefix + "-" + dateStamp + "." + strconv.FormatUint(index, 10) + logExtension
	}
	return prefix + "-" + strconv.FormatUint(index, 10) + logExtension
}

// parseRotationIndex extracts the rotation index from a rotated filename.
// It accepts both the plain "{prefix}-{n}.log" and the daily
// "{prefix}-{date}.{n}.log" forms, and reports false for the live file and
// anything that does not match. Used only during recovery, so malformed
// names are skipped rather than treated as errors.
func parseRotationIndex(name, prefix string) (uint64, bool) {
	if name == liveFileName(prefix) {
		return 0, false
	}
	marker := prefix + "-"
	if !strings.HasPrefix(name, marker) || !strings.HasSuffix(name, logExtension) {
		return 0, false
	}
	stem := strings.TrimSuffix(strings.TrimPrefix(name, marker), logExtension)
	if i := strings.LastIndexByte(stem, '.'); i >= 0 {
		stem = stem[i+1:]
	}
	if stem == "" {
		return 0, false
	}
	index, err := strconv.ParseUint(stem, 10, 64)
	if err != nil {
		return 0, false
	}
	return index, true
}
