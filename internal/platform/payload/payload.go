// Package payload probes loosely-typed JSON documents decoded into any.
package payload

import (
	"sort"
	"strconv"
	"strings"
)

// Lookup walks nested objects by key. An empty path returns src itself.
func Lookup(src any, path ...string) (any, bool) {
	current := src
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		next, ok := obj[key]
		if !ok || next == nil {
			return nil, false
		}
		current = next
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// Map returns the object at path, or nil.
func Map(src any, path ...string) map[string]any {
	raw, ok := Lookup(src, path...)
	if !ok {
		return nil
	}
	obj, _ := raw.(map[string]any)
	return obj
}

// Slice returns the array at path, or nil.
func Slice(src any, path ...string) []any {
	raw, ok := Lookup(src, path...)
	if !ok {
		return nil
	}
	items, _ := raw.([]any)
	return items
}

// Maps keeps the object elements of items, in order.
func Maps(items []any) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

// String renders a scalar. Objects, arrays and nil render as "".
// Numbers keep no trailing zeros.
func String(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case int32:
		return strconv.FormatInt(int64(typed), 10)
	case uint64:
		return strconv.FormatUint(typed, 10)
	case bool:
		return strconv.FormatBool(typed)
	case interface{ String() string }:
		return strings.TrimSpace(typed.String())
	default:
		return ""
	}
}

// Bool reports the value only when the field holds a real boolean.
func Bool(src map[string]any, key string) (value bool, ok bool) {
	if src == nil {
		return false, false
	}
	value, ok = src[key].(bool)
	return value, ok
}

// OrderedByNumericSuffix returns the object values of src sorted by the
// trailing number in their keys ("bat_2" before "bat_10"). Keys without a
// number sort last, alphabetically.
func OrderedByNumericSuffix(src map[string]any) []map[string]any {
	type entry struct {
		key   string
		index int
		value map[string]any
	}

	entries := make([]entry, 0, len(src))
	for key, raw := range src {
		obj, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		entries = append(entries, entry{key: key, index: numericSuffix(key), value: obj})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		left, right := entries[i], entries[j]
		if left.index != right.index {
			if left.index < 0 {
				return false
			}
			if right.index < 0 {
				return true
			}
			return left.index < right.index
		}
		return left.key < right.key
	})

	out := make([]map[string]any, 0, len(entries))
	for _, item := range entries {
		out = append(out, item.value)
	}
	return out
}

func numericSuffix(key string) int {
	end := len(key)
	start := end
	for start > 0 && key[start-1] >= '0' && key[start-1] <= '9' {
		start--
	}
	if start == end {
		return -1
	}
	n, err := strconv.Atoi(key[start:end])
	if err != nil {
		return -1
	}
	return n
}

// Truthy follows loose JSON truthiness: false, zero, "" and nil are false.
func Truthy(value any) bool {
	switch typed := value.(type) {
	case nil:
		return false
	case bool:
		return typed
	case string:
		return typed != ""
	case float64:
		return typed != 0
	case int:
		return typed != 0
	case int64:
		return typed != 0
	default:
		return true
	}
}
