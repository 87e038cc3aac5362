/* compare.go
 * Contains the logic for lining up two teams' advanced stats section by section
 */

package logic

import "cfb-stats/api/shared"

// ComparisonSections are the sections of the advanced stats record that are compared, in print order
var ComparisonSections = []string{"total", "offense", "defense"}

// ComparisonRow is one line of a comparison table
type ComparisonRow struct {
	Statistic string
	ValueA    string
	ValueB    string
}

// CompareSection builds the rows comparing one section of two teams' stats.
// Only statistics present in team A's section are listed (sorted by raw key), a statistic only team B has is left
// out. A value team B is missing is shown as N/A
// Preconditions: Receives both teams' stats and the section name
// Postconditions: Returns the rows and true, or nil and false if either team lacks a non empty section
func CompareSection(statsA shared.TeamStats, statsB shared.TeamStats, section string) ([]ComparisonRow, bool) {
	sectionA, okA := statsA.Section(section)
	sectionB, okB := statsB.Section(section)
	if !okA || !okB {
		return nil, false
	}

	rows := make([]ComparisonRow, 0, len(sectionA))
	for _, name := range SortedKeys(sectionA) {
		valueB := NotAvailable
		if value, ok := sectionB[name]; ok {
			valueB = FormatValue(value)
		}
		rows = append(rows, ComparisonRow{
			Statistic: FormatStatName(name),
			ValueA:    FormatValue(sectionA[name]),
			ValueB:    valueB,
		})
	}
	return rows, true
}
