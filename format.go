// FILE: format.go
package rollog

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// Timestamp layout of the fixed entry format
const entryTimeFormat = "2006/01/02 15:04:05.000"

// formatEntry renders one log line: timestamp, 5-character level column,
// message, newline. The layout is fixed and not configurable.
func formatEntry(timestamp time.Time, level int64, message string) []byte {
	buf := make([]byte, 0, len(entryTimeFormat)+len(message)+8)
	buf = timestamp.AppendFormat(buf, entryTimeFormat)
	buf = append(buf, ' ')
	buf = append(buf, levelColumn(level)...)
	buf = append(buf, ' ')
	buf = append(buf, message...)
	buf = append(buf, '\n')
	return buf
}

// Compact dumper for values without an explicit conversion below
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// formatArgs converts the arguments of the convenience methods to a single
// space-separated message string. Scalars are converted directly; structs,
// maps and other composite values are delegated to spew.
func formatArgs(args []any) string {
	var buf []byte
	for i, arg := range args {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendValue(buf, arg)
	}
	return string(buf)
}

// appendValue converts any value to its string representation.
func appendValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(buf, val...)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'f', -1, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return append(buf, "nil"...)
	case time.Time:
		return val.AppendFormat(buf, time.RFC3339Nano)
	case error:
		return append(buf, val.Error()...)
	case fmt.Stringer:
		return append(buf, val.String()...)
	default:
		// Structs, maps, pointers, slices and the rest go through spew,
		// trimming the trailing newline it adds.
		var b bytes.Buffer
		dumper.Fdump(&b, val)
		return append(buf, bytes.TrimSpace(b.Bytes())...)
	}
}
