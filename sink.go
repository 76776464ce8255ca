// FILE: sink.go
package rollog

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// consoleWriter resolves the mirror target for tagged log entries.
// Returns nil when mirroring is disabled.
func consoleWriter(cfg *Config) io.Writer {
	if !cfg.EnableStdout {
		return nil
	}
	if cfg.StdoutTarget == "stderr" {
		return os.Stderr
	}
	return os.Stdout
}

// internalLog handles writing internal logger diagnostics to stderr.
// Enabled before the first configure (there is nowhere else to report) and
// afterwards only when the configuration asks for it.
func (l *Logger) internalLog(format string, args ...any) {
	if l.cfg != nil && !l.cfg.InternalErrorsToStderr {
		return
	}
	if !strings.HasPrefix(format, "rollog: ") {
		format = "rollog: " + format
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
