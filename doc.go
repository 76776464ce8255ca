// Package rollog is a local file logger with rolling rotation and
// count-bounded retention.
//
// Entries are appended to a single live file, {prefix}-latest.log, as
// timestamped, leveled lines. Before each write the logger decides whether
// to rotate: when the live file has reached the configured size limit, or
// when the calendar day has changed and daily rolling is enabled. Rotation
// renames the live file to an indexed name ({prefix}-{n}.log, or
// {prefix}-{date}.{n}.log with daily rolling) and prunes the oldest rotated
// files beyond the retention count.
//
// On (re)configuration the logger scans the log directory to recover its
// state: the live file size resumes the size tracking and the highest index
// found among rotated files guarantees new rotations never collide with
// existing names across restarts.
//
// No error from this package is ever fatal to the host process. File store
// failures are logged and degrade to "operation did not happen": the
// worst case is a dropped entry or a skipped rotation cycle.
//
// Basic usage:
//
//	logger := rollog.NewLogger()
//	cfg := rollog.DefaultConfig()
//	cfg.Directory = "/var/log/myapp"
//	cfg.Prefix = "myapp"
//	if err := logger.Configure(cfg); err != nil {
//		// invalid configuration
//	}
//	logger.Info("startup", "listening on", ":8080")
//
// A package-level default logger mirrors the instance API, and the compat
// subpackage provides adapters for fasthttp and gnet.
package rollog
