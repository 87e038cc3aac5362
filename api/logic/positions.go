/* positions.go
 * Contains the fixed table that maps a roster position code to the stat categories fetched for that position
 */

package logic

import "strings"

// positionOrder is the order positions are listed in messages
var positionOrder = []string{"QB", "RB", "WR", "TE", "FB", "DB", "CB", "S", "LB", "DE", "DT", "DL", "K", "P", "LS", "OL"}

// PositionCategoryMap maps an uppercase position code to the ordered list of categories requested for it. Positions
// with an empty list are known but have no supported stats
var PositionCategoryMap = map[string][]string{
	"QB": {"passing", "rushing", "receiving", "fumbles"},
	"RB": {"rushing", "receiving", "fumbles"},
	"WR": {"receiving", "rushing", "fumbles"},
	"TE": {"receiving", "rushing", "fumbles"},
	"FB": {"rushing", "receiving", "fumbles"},
	"DB": {"defensive", "interceptions", "fumbles"},
	"CB": {"defensive", "interceptions", "fumbles"},
	"S":  {"defensive", "interceptions", "fumbles"},
	"LB": {"defensive", "interceptions", "fumbles"},
	"DE": {"defensive", "interceptions", "fumbles"},
	"DT": {"defensive", "interceptions", "fumbles"},
	"DL": {"defensive", "interceptions", "fumbles"},
	"K":  {"kicking"},
	"P":  {"punting"},
	"LS": {},
	"OL": {},
}

// CategoriesForPosition returns the categories to fetch for a position. The lookup ignores case and surrounding
// whitespace
// Preconditions: Receives a position code as listed on a roster, e.g. "qb"
// Postconditions: Returns a copy of the category list and true, or nil and false if the position is unknown or has
// no categories
func CategoriesForPosition(position string) ([]string, bool) {
	categories, ok := PositionCategoryMap[strings.ToUpper(strings.TrimSpace(position))]
	if !ok || len(categories) == 0 {
		return nil, false
	}
	return append([]string(nil), categories...), true
}

// SupportedPositions returns the position codes that have at least one category, in display order
func SupportedPositions() []string {
	var positions []string
	for _, position := range positionOrder {
		if len(PositionCategoryMap[position]) > 0 {
			positions = append(positions, position)
		}
	}
	return positions
}
