package core

import (
	"fmt"
	"strconv"
	"time"
)

// Field is a key-value pair appended to a message as " key=value".
// The adapters use it to carry zap fields, slog attrs and logrus data.
type Field struct {
	Key   string
	Value any
}

// F is shorthand for constructing a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// StringValue returns the string representation of a field's value
func (f Field) StringValue() string {
	switch v := f.Value.(type) {
	case nil:
		return "<nil>"
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339)
	case time.Duration:
		return v.String()
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
