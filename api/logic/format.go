/* format.go
 * Contains the helpers used to turn raw API keys and values into text for display
 */

package logic

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// NotAvailable is printed in place of a value that is missing or null
const NotAvailable = "N/A"

// TitleCase upper cases every letter that follows a non letter and lower cases every other letter,
// e.g. "points per game" -> "Points Per Game"
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevIsLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevIsLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevIsLetter = true
			continue
		}
		b.WriteRune(r)
		prevIsLetter = false
	}
	return b.String()
}

// FormatStatName converts a snake_case statistic name into a display label, e.g. "success_rate" -> "Success Rate"
func FormatStatName(name string) string {
	return TitleCase(strings.ReplaceAll(name, "_", " "))
}

// FormatValue renders a decoded JSON value for display. Whole numbers are printed without a decimal point and nested
// maps are printed with sorted keys so output is stable
func FormatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return NotAvailable
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case map[string]interface{}:
		keys := SortedKeys(v)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", key, FormatValue(v[key])))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, FormatValue(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// SortedKeys returns the keys of m in alphabetical order
func SortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
