package dispatch

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/viant/pybo/internal/conv"
)

type pair struct {
	key   string
	value string
}

var (
	timeType          = reflect.TypeOf(time.Time{})
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// encodeForm renders params as k=v&k2=v2. Map keys are sorted, struct fields keep
// their declaration order and use their json names.
func encodeForm(params any) (string, error) {
	pairs, err := formPairs(params)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i, p := range pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String(), nil
}

func formPairs(params any) ([]pair, error) {
	switch actual := params.(type) {
	case nil:
		return nil, nil
	case url.Values:
		keys := make([]string, 0, len(actual))
		for k := range actual {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var ret []pair
		for _, k := range keys {
			for _, v := range actual[k] {
				ret = append(ret, pair{key: k, value: v})
			}
		}
		return ret, nil
	}
	value := reflect.ValueOf(params)
	for value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil, nil
		}
		value = value.Elem()
	}
	switch value.Kind() {
	case reflect.Map:
		if value.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported params key type: %v", value.Type().Key())
		}
		keys := value.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		var ret []pair
		for _, key := range keys {
			var err error
			if ret, err = appendValue(ret, key.String(), value.MapIndex(key)); err != nil {
				return nil, err
			}
		}
		return ret, nil
	case reflect.Struct:
		return structPairs(nil, value)
	}
	return nil, fmt.Errorf("unsupported params type: %T", params)
}

func structPairs(ret []pair, value reflect.Value) ([]pair, error) {
	valueType := value.Type()
	for i := 0; i < valueType.NumField(); i++ {
		field := valueType.Field(i)
		name, omitEmpty, skip := jsonName(field)
		if skip {
			continue
		}
		fieldValue := value.Field(i)
		if field.Anonymous && field.Tag.Get("json") == "" {
			embedded := fieldValue
			if embedded.Kind() == reflect.Ptr {
				if embedded.IsNil() {
					continue
				}
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				var err error
				if ret, err = structPairs(ret, embedded); err != nil {
					return nil, err
				}
				continue
			}
		}
		if !field.IsExported() {
			continue
		}
		if omitEmpty && fieldValue.IsZero() {
			continue
		}
		var err error
		if ret, err = appendValue(ret, name, fieldValue); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func appendValue(ret []pair, key string, value reflect.Value) ([]pair, error) {
	for value.Kind() == reflect.Interface || value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return ret, nil
		}
		value = value.Elem()
	}
	switch value.Kind() {
	case reflect.Slice, reflect.Array:
		if value.Kind() == reflect.Slice && value.Type().Elem().Kind() == reflect.Uint8 {
			return append(ret, pair{key: key, value: string(value.Bytes())}), nil
		}
		for i := 0; i < value.Len(); i++ {
			var err error
			if ret, err = appendValue(ret, key, value.Index(i)); err != nil {
				return nil, err
			}
		}
		return ret, nil
	case reflect.Map, reflect.Struct:
		if value.Type() != timeType && !value.Type().Implements(textMarshalerType) {
			return nil, fmt.Errorf("param %v: nested %v values are not supported", key, value.Kind())
		}
	}
	text, ok := conv.AsString(value.Interface())
	if !ok {
		return ret, nil
	}
	return append(ret, pair{key: key, value: text}), nil
}

func jsonName(field reflect.StructField) (name string, omitEmpty bool, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name = field.Name
	if tag == "" {
		return name, false, false
	}
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		name = parts[0]
	}
	for _, option := range parts[1:] {
		if option == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}
