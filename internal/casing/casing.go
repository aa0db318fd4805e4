// Package casing converts object keys between the UI's camelCase and the
// backend's snake_case. It is applied at the network boundary only.
package casing

import (
	"strings"
	"unicode"
)

// ToSnake converts a camelCase key to snake_case.
//
//	employeeName → employee_name
//	HTTPStatus   → http_status
//	address2     → address2
func ToSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			boundary := unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower)
			if boundary && prev != '_' {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// ToCamel converts a snake_case key to camelCase. Keys without an inner
// underscore come back unchanged, so camel input is left alone.
// Leading and trailing underscores are kept.
func ToCamel(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}

	runes := []rune(s)
	start := 0
	for start < len(runes) && runes[start] == '_' {
		start++
	}
	end := len(runes)
	for end > start && runes[end-1] == '_' {
		end--
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(string(runes[:start]))

	upper := false
	for _, r := range runes[start:end] {
		if r == '_' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	b.WriteString(string(runes[end:]))
	return b.String()
}

// SnakeKeys recursively renames every object key in a decoded JSON value to snake_case.
func SnakeKeys(v any) any {
	return convertKeys(v, ToSnake)
}

// CamelKeys recursively renames every object key in a decoded JSON value to camelCase.
func CamelKeys(v any) any {
	return convertKeys(v, ToCamel)
}

func convertKeys(v any, conv func(string) string) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[conv(k)] = convertKeys(val, conv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = convertKeys(val, conv)
		}
		return out
	default:
		return v
	}
}
