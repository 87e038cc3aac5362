/* models.go
 * This file contain the constants and structs that are used by api consumers
 */

package api

// Column widths used when printing tables. Values wider than a column are printed in full and push the rest of the
// line to the right
const (
	statColumnWidth  = 30
	teamColumnWidth  = 20
	labelColumnWidth = 35
	maxSuggestions   = 5
)

// ComparisonSummary describes what CompareTeams printed
type ComparisonSummary struct {
	// Sections lists the sections that were printed, in print order
	Sections []string
	// Rows is the total number of statistic rows printed across all sections
	Rows int
}
