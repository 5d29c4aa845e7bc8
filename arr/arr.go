// Package arr projects and removes keys of plain mappings. It never modifies
// its input: mappings along a removed path are copied.
package arr

import "strings"

// Only returns the entries of m whose key is listed in keys.
func Only(m map[string]any, keys ...string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Except returns m without keys. See Forget for dot-path handling.
func Except(m map[string]any, keys ...string) map[string]any {
	return Forget(m, keys...)
}

// Forget removes keys from a copy of m. A key that exists at the top level is
// removed as is; otherwise it is read as a dot path ("a.b.c") that descends
// into nested mappings named a, then b, removing c. A path whose intermediate
// segment is missing or not a mapping is a no-op.
func Forget(m map[string]any, keys ...string) map[string]any {
	out := shallowCopy(m)
	for _, key := range keys {
		if Exists(out, key) {
			delete(out, key)
			continue
		}
		forgetPath(out, strings.Split(key, "."))
	}
	return out
}

// forgetPath removes parts from cur, replacing every mapping along the way
// with a copy so nested input is never modified.
func forgetPath(cur map[string]any, parts []string) {
	for len(parts) > 1 {
		next, ok := cur[parts[0]].(map[string]any)
		if !ok {
			return
		}
		next = shallowCopy(next)
		cur[parts[0]] = next
		cur = next
		parts = parts[1:]
	}
	delete(cur, parts[0])
}

// Exists reports whether key is present in m.
func Exists(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

func shallowCopy(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
