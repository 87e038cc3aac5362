/* roster.go
 * Contains the logic for finding a player on a roster and suggesting names when no exact match is found
 */

package logic

import (
	"sort"
	"strings"

	"cfb-stats/api/shared"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FindPlayerPosition returns the position of the first roster entry whose name matches playerName, ignoring case.
// Matching is exact, fuzzy matching is only used for suggestions
// Preconditions: Receives the roster in API order and the player's name
// Postconditions: Returns the position and true, or "" and false if there is no match or the match has no position
func FindPlayerPosition(roster []shared.RosterEntry, playerName string) (string, bool) {
	target := strings.ToLower(strings.TrimSpace(playerName))
	for _, entry := range roster {
		if strings.ToLower(strings.TrimSpace(entry.Name)) != target {
			continue
		}
		if entry.Position == "" {
			return "", false
		}
		return entry.Position, true
	}
	return "", false
}

// SuggestPlayerNames returns up to limit roster names that fuzzy match playerName, best match first
// Preconditions: Receives the roster, the name that failed to match and the max number of suggestions
// Postconditions: Returns a slice of names from the roster, which is empty if nothing is close
func SuggestPlayerNames(roster []shared.RosterEntry, playerName string, limit int) []string {
	query := strings.TrimSpace(playerName)
	if query == "" || limit <= 0 {
		return nil
	}

	// Dedupe names, a roster can list the same player twice if they changed position
	seen := make(map[string]bool)
	var names []string
	for _, entry := range roster {
		if entry.Name == "" || seen[entry.Name] {
			continue
		}
		seen[entry.Name] = true
		names = append(names, entry.Name)
	}

	ranks := fuzzy.RankFindFold(query, names)

	// Fall back to the surname alone, so "Joseph Burrow" still finds "Joe Burrow"
	if len(ranks) == 0 {
		parts := strings.Fields(query)
		last := parts[len(parts)-1]
		ranks = fuzzy.RankFindFold(last, names)
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Distance < ranks[j].Distance
	})

	var suggestions []string
	for _, rank := range ranks {
		if len(suggestions) == limit {
			break
		}
		suggestions = append(suggestions, rank.Target)
	}
	return suggestions
}
