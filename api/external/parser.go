/* parser.go
 * Contains the helpers that turn decoded API JSON into the shapes used by the rest of the program. The API uses
 * camelCase keys, everything downstream of this package uses snake_case
 */

package external

import (
	"strconv"
	"strings"
	"unicode"

	"cfb-stats/api/shared"
)

// ToSnakeCase converts a camelCase key into snake_case. Acronyms are kept together, e.g. totalPPA -> total_ppa.
// Keys that are already snake_case are returned unchanged
func ToSnakeCase(key string) string {
	runes := []rune(key)
	var b strings.Builder
	b.Grow(len(key) + 4)

	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 {
			prev := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// NormalizeKeys returns a copy of record with every key, at every depth, converted to snake_case
func NormalizeKeys(record map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(record))
	for key, value := range record {
		out[ToSnakeCase(key)] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return NormalizeKeys(v)
	case []interface{}:
		items := make([]interface{}, len(v))
		for i := range v {
			items[i] = normalizeValue(v[i])
		}
		return items
	default:
		return value
	}
}

// ParseRosterEntry builds a RosterEntry from a normalized roster record. The player's name is taken from "name" when
// the API provides it, otherwise it is built from first_name and last_name
// Preconditions: Receives a record whose keys have already been normalized
// Postconditions: Returns a RosterEntry, missing fields are left as zero values
func ParseRosterEntry(record map[string]interface{}) shared.RosterEntry {
	name := strings.TrimSpace(stringField(record, "name"))
	if name == "" {
		name = strings.TrimSpace(stringField(record, "first_name") + " " + stringField(record, "last_name"))
	}

	return shared.RosterEntry{
		ID:       stringField(record, "id"),
		Name:     name,
		Team:     stringField(record, "team"),
		Position: strings.TrimSpace(stringField(record, "position")),
		Jersey:   intField(record, "jersey"),
		Year:     intField(record, "year"),
	}
}

// stringField returns the field as a string. Numbers are formatted, anything else missing or unexpected is ""
func stringField(record map[string]interface{}, key string) string {
	switch v := record[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

func intField(record map[string]interface{}, key string) int {
	switch v := record[key].(type) {
	case float64:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
