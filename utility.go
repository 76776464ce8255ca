// FILE: utility.go
package rollog

import (
	"fmt"
	"strings"
)

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "rollog: ") {
		format = "rollog: " + format
	}
	return fmt.Errorf(format, args...)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString("rollog: multiple configuration errors:")
	for i, err := range errors {
		errMsg := err.Error()
		// Strip the package prefix from individual errors to avoid duplication
		errMsg = strings.TrimPrefix(errMsg, "rollog: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}
