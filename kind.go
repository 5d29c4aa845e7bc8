package godto

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// asMap returns v as a string-keyed mapping. map[string]any is returned as is;
// other maps with string keys are copied.
func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return t, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		out[it.Key().String()] = it.Value().Interface()
	}
	return out, true
}

// asList returns v as a positional list. []any is returned as is; other
// slices and arrays are copied. Byte slices are not lists.
func asList(v any) ([]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case []any:
		return t, true
	case []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// isRawArray reports whether v is plain array-shaped input (list or mapping).
func isRawArray(v any) bool {
	if _, ok := asList(v); ok {
		return true
	}
	_, ok := asMap(v)
	return ok
}

// isArrayShaped extends isRawArray with collections.
func isArrayShaped(v any) bool {
	if _, ok := v.(*Collection); ok {
		return true
	}
	return isRawArray(v)
}

// elementsOf returns the elements of an array-shaped value: list items,
// collection items, or mapping values ordered by key.
func elementsOf(v any) ([]any, bool) {
	if c, ok := v.(*Collection); ok {
		if c == nil {
			return nil, false
		}
		return c.items, true
	}
	if l, ok := asList(v); ok {
		return l, true
	}
	m, ok := asMap(v)
	if !ok {
		return nil, false
	}
	keys := sortedKeys(m)
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}
	return out, true
}

// kindOf returns the runtime tag of v: one of the primitive Tag* constants,
// or "object" for anything else.
func kindOf(v any) string {
	switch t := v.(type) {
	case nil:
		return TagNull
	case bool:
		return TagBoolean
	case string:
		return TagString
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return TagInteger
	case float32, float64:
		return TagDouble
	case json.Number:
		if _, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return TagInteger
		}
		return TagDouble
	case *Collection:
		if t == nil {
			return TagNull
		}
		return TagArray
	case *Object:
		if t == nil {
			return TagNull
		}
		return "object"
	}
	if isRawArray(v) {
		return TagArray
	}
	return "object"
}

// describe renders the observed kind of v for error messages. Containers are
// reduced to their kind; scalars are printed.
func describe(v any) string {
	switch t := v.(type) {
	case nil:
		return TagNull
	case *Object:
		if t == nil {
			return TagNull
		}
		return t.schema.Name()
	case *View:
		return t.obj.schema.Name()
	case *Collection:
		return "collection"
	}
	switch kindOf(v) {
	case TagArray:
		return TagArray
	case "object":
		return reflect.TypeOf(v).String()
	}
	return fmt.Sprint(v)
}

// cloneValue deep-copies plain lists and mappings so defaults are not shared
// between instances.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = cloneValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = cloneValue(vv)
		}
		return out
	}
	return v
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
