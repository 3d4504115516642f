package conv

import (
	"encoding"
	"fmt"
	"strconv"
	"time"
)

// AsString formats a primitive value, ok is false for nil.
func AsString(value any) (string, bool) {
	switch actual := value.(type) {
	case nil:
		return "", false
	case string:
		return actual, true
	case *string:
		if actual == nil {
			return "", false
		}
		return *actual, true
	case bool:
		return strconv.FormatBool(actual), true
	case int:
		return strconv.Itoa(actual), true
	case int8:
		return strconv.FormatInt(int64(actual), 10), true
	case int16:
		return strconv.FormatInt(int64(actual), 10), true
	case int32:
		return strconv.FormatInt(int64(actual), 10), true
	case int64:
		return strconv.FormatInt(actual, 10), true
	case uint:
		return strconv.FormatUint(uint64(actual), 10), true
	case uint8:
		return strconv.FormatUint(uint64(actual), 10), true
	case uint16:
		return strconv.FormatUint(uint64(actual), 10), true
	case uint32:
		return strconv.FormatUint(uint64(actual), 10), true
	case uint64:
		return strconv.FormatUint(actual, 10), true
	case float32:
		return strconv.FormatFloat(float64(actual), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(actual, 'f', -1, 64), true
	case time.Time:
		return actual.Format(time.RFC3339Nano), true
	case encoding.TextMarshaler:
		text, err := actual.MarshalText()
		if err != nil {
			return fmt.Sprint(value), true
		}
		return string(text), true
	case fmt.Stringer:
		return actual.String(), true
	}
	return fmt.Sprint(value), true
}
