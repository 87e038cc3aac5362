/* models.go
 * This file contain the structs that are shared between sub packages. All of them are built per request and are never
 * mutated once they have been handed to a caller
 */

package shared

// TeamStats is the advanced season record for one team in one year, keyed by section (e.g. "offense") and then by
// statistic name. Keys are snake_case regardless of how the API spelled them
type TeamStats map[string]interface{}

// Section returns the nested statistic mapping for a section, or false if the section is missing, empty or not a map
func (t TeamStats) Section(name string) (map[string]interface{}, bool) {
	raw, ok := t[name]
	if !ok {
		return nil, false
	}
	section, ok := raw.(map[string]interface{})
	if !ok || len(section) == 0 {
		return nil, false
	}
	return section, true
}

// RosterEntry is a single player listed on a team's roster for a year
type RosterEntry struct {
	ID       string
	Name     string
	Team     string
	Position string
	Jersey   int
	Year     int
}

// PlayerRecord is one row returned by the player season stats endpoint for a single category
type PlayerRecord map[string]interface{}

// PlayerName returns the value of the "player" field, or an empty string if it is missing
func (p PlayerRecord) PlayerName() string {
	name, _ := p["player"].(string)
	return name
}

// CombinedStats is the flattened record for one player. Every key is "{category}_{field}" so fields from different
// categories never collide
type CombinedStats map[string]interface{}
