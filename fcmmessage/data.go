package fcmmessage

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// stringifyData converts every value into a string, FCM accepts nothing else in the data block.
// Composite values become JSON text.
func stringifyData(data map[string]any) map[string]string {
	res := make(map[string]string, len(data))
	for k, v := range data {
		res[k] = stringifyValue(v)
	}
	return res
}

func stringifyValue(v any) string {
	switch tv := v.(type) {
	case nil:
		return ""
	case string:
		return tv
	case []byte:
		return string(tv)
	case json.RawMessage:
		return string(tv)
	case json.Number:
		return tv.String()
	}
	if isComposite(v) {
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

func isComposite(v any) bool {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		return true
	}
	return false
}
