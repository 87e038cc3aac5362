/* stats.go
 * Contains the logic for merging per category player records into a single flat record, and for turning the merged
 * keys back into readable labels
 */

package logic

import (
	"strings"

	"cfb-stats/api/shared"
)

// identifyingFields are present on every player record and describe who the record is for, not how they played.
// They are dropped when records are merged
var identifyingFields = map[string]struct{}{
	"player":     {},
	"team":       {},
	"conference": {},
	"athlete_id": {},
	"category":   {},
}

// categoryLabels are the categories whose label is rebuilt from the category name. Order matters: the first prefix
// that matches wins
var categoryLabels = []struct {
	prefix string
	label  string
}{
	{"passing_", "Passing"},
	{"rushing_", "Rushing"},
	{"receiving_", "Receiving"},
	{"fumbles_", "Fumbles"},
}

// IsIdentifyingField reports whether a record field is excluded from merging
func IsIdentifyingField(field string) bool {
	_, ok := identifyingFields[field]
	return ok
}

// FindPlayerRecord finds the first record whose player field matches playerName, ignoring case
// Preconditions: Receives records in the order returned by the API, and the player's name
// Postconditions: Returns the first matching record and true, or nil and false if there is no match
func FindPlayerRecord(records []shared.PlayerRecord, playerName string) (shared.PlayerRecord, bool) {
	target := strings.ToLower(strings.TrimSpace(playerName))
	for _, record := range records {
		if strings.ToLower(strings.TrimSpace(record.PlayerName())) == target {
			return record, true
		}
	}
	return nil, false
}

// MergePlayerRecord copies every non identifying field of record into combined under "{category}_{field}"
// Preconditions: Receives a non nil combined map, the category the record was fetched for, and the record itself
// Postconditions: combined is updated in place, the number of fields added is returned
func MergePlayerRecord(combined shared.CombinedStats, category string, record shared.PlayerRecord) int {
	added := 0
	for field, value := range record {
		if IsIdentifyingField(field) {
			continue
		}
		combined[category+"_"+field] = value
		added++
	}
	return added
}

// DisplayLabel turns a combined stats key into a label. Keys from the passing, rushing, receiving and fumbles
// categories keep their category as a leading word, e.g. "passing_completions" -> "Passing Completions". Any other key
// is title cased as a whole, e.g. "defensive_tot" -> "Defensive Tot"
func DisplayLabel(key string) string {
	for _, category := range categoryLabels {
		if rest, ok := strings.CutPrefix(key, category.prefix); ok {
			return category.label + " " + FormatStatName(rest)
		}
	}
	return FormatStatName(key)
}
