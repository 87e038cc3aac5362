/* api.go
 * This file contains the public methods for interacting with this package. Each method writes human readable output
 * to the writer it is given. Every call to the remote API is a containment boundary: a failure is reported to the
 * writer and the result is treated as absent, it is never returned to the caller
 */

package api

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cfb-stats/api/external"
	"cfb-stats/api/logging"
	"cfb-stats/api/logic"
	"cfb-stats/api/shared"

	"go.uber.org/zap"
)

// API provides the team comparison and player lookup workflows on top of a CFBD client
type API struct {
	Client external.Interface
	logger *zap.Logger
}

// NewAPI creates a new API instance using the provided client
func NewAPI(client external.Interface, logger *zap.Logger) (*API, error) {
	if client == nil {
		return nil, fmt.Errorf("client is required")
	}

	return &API{
		Client: client,
		logger: logging.OrNop(logger),
	}, nil
}

// FetchAdvancedStats fetches a team's advanced season stats.
// It receives the team name and year. Progress and any problem are written to w.
// It returns the first record the API returned and true, or false if there was no record or the request failed.
func (a *API) FetchAdvancedStats(ctx context.Context, w io.Writer, team string, year int) (shared.TeamStats, bool) {
	fmt.Fprintf(w, "Fetching advanced stats for %s in %d...\n", team, year)

	results, err := a.Client.GetAdvancedSeasonStats(ctx, team, year)
	if err != nil {
		a.logger.Warn("advanced stats request failed", zap.String("team", team), zap.Int("year", year), zap.Error(err))
		fmt.Fprintln(w, describeError(err,
			fmt.Sprintf("CFBD API Error for %s", team),
			fmt.Sprintf("An unexpected error occurred for %s", team),
		))
		return nil, false
	}

	if len(results) == 0 {
		fmt.Fprintf(w, "No advanced stats found for %s in %d. Please check the team name and year.\n", team, year)
		return nil, false
	}
	return results[0], true
}

// CompareTeams prints a side by side comparison of two teams' advanced stats for the total, offense and defense
// sections. Only statistics that team A has are listed. A section is skipped entirely if either team lacks it
// Preconditions: Receives both team names and the year
// Postconditions: Tables are written to w, a summary of what was printed is returned
func (a *API) CompareTeams(ctx context.Context, w io.Writer, teamA string, teamB string, year int) ComparisonSummary {
	var summary ComparisonSummary
	fmt.Fprintf(w, "--- Comparing Advanced Season Stats for %s vs %s (%d) ---\n", teamA, teamB, year)

	statsA, okA := a.FetchAdvancedStats(ctx, w, teamA, year)
	statsB, okB := a.FetchAdvancedStats(ctx, w, teamB, year)
	if !okA || !okB {
		return summary
	}

	for _, section := range logic.ComparisonSections {
		rows, ok := logic.CompareSection(statsA, statsB, section)
		if !ok {
			a.logger.Debug("skipping section", zap.String("section", section))
			continue
		}

		fmt.Fprintf(w, "\n--- %s ---\n", logic.TitleCase(section))
		fmt.Fprintf(w, "%-*s%-*s%-*s\n", statColumnWidth, "Statistic", teamColumnWidth, teamA, teamColumnWidth, teamB)
		fmt.Fprintln(w, strings.Repeat("-", statColumnWidth+2*teamColumnWidth))
		for _, row := range rows {
			fmt.Fprintf(w, "%-*s%-*s%-*s\n", statColumnWidth, row.Statistic, teamColumnWidth, row.ValueA, teamColumnWidth, row.ValueB)
		}

		summary.Sections = append(summary.Sections, section)
		summary.Rows += len(rows)
	}
	return summary
}

// GetPlayerPosition looks a player up on a team's roster.
// It receives the player's name, the team and the year. Any problem is written to w.
// It returns the position listed for the first case insensitive name match and true, or false if the player is not
// on the roster or the roster could not be fetched.
func (a *API) GetPlayerPosition(ctx context.Context, w io.Writer, player string, team string, year int) (string, bool) {
	position, _, ok := a.resolvePosition(ctx, w, player, team, year)
	return position, ok
}

// GetPlayerStatsByName prints a player's season stats across every category that applies to their position
// Preconditions: Receives the player's full name, their team and the year
// Postconditions: The stats (or the reason there are none) are written to w. The merged stats are returned along
// with true if at least one stat was found
func (a *API) GetPlayerStatsByName(ctx context.Context, w io.Writer, player string, team string, year int) (shared.CombinedStats, bool) {
	fmt.Fprintf(w, "--- Searching for stats for %s on %s (%d) ---\n", player, team, year)

	position, suggestions, ok := a.resolvePosition(ctx, w, player, team, year)
	if !ok {
		fmt.Fprintf(w, "Could not find player '%s' or team '%s' in the roster for %d. Please check the names and try again.\n", player, team, year)
		if len(suggestions) > 0 {
			fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(suggestions, ", "))
		}
		return nil, false
	}

	categories, ok := logic.CategoriesForPosition(position)
	if !ok {
		fmt.Fprintf(w, "Player position '%s' is not supported for detailed stats fetching. Supported positions are [%s].\n",
			position, strings.Join(logic.SupportedPositions(), ", "))
		return nil, false
	}

	combined := a.CollectPlayerStats(ctx, w, player, team, year, categories)
	if len(combined) == 0 {
		fmt.Fprintf(w, "No stats found for %s on team '%s' in %d.\n", player, team, year)
		return nil, false
	}

	fmt.Fprintf(w, "\n--- Player Stats for %s (%s) ---\n", player, position)
	for _, key := range logic.SortedKeys(combined) {
		fmt.Fprintf(w, "%-*s: %s\n", labelColumnWidth, logic.DisplayLabel(key), logic.FormatValue(combined[key]))
	}
	return combined, true
}

// CollectPlayerStats requests each category in order and merges the player's record from each one.
// A category that fails, or that has no record for the player, adds nothing and the remaining categories are still
// requested.
func (a *API) CollectPlayerStats(ctx context.Context, w io.Writer, player string, team string, year int, categories []string) shared.CombinedStats {
	combined := shared.CombinedStats{}

	for _, category := range categories {
		fmt.Fprintf(w, "Fetching %s stats...\n", category)

		records, err := a.Client.GetPlayerSeasonStats(ctx, year, team, category)
		if err != nil {
			a.logger.Warn("player stats request failed", zap.String("category", category), zap.Error(err))
			fmt.Fprintln(w, describeError(err, "CFBD API Error", "An unexpected error occurred"))
			continue
		}

		record, ok := logic.FindPlayerRecord(records, player)
		if !ok {
			a.logger.Debug("no record for player", zap.String("category", category), zap.String("player", player))
			continue
		}
		logic.MergePlayerRecord(combined, category, record)
	}
	return combined
}

// resolvePosition fetches the roster and finds the player on it. On a miss it also returns close names from the
// roster so the caller can suggest them
func (a *API) resolvePosition(ctx context.Context, w io.Writer, player string, team string, year int) (string, []string, bool) {
	roster, err := a.Client.GetRoster(ctx, team, year)
	if err != nil {
		a.logger.Warn("roster request failed", zap.String("team", team), zap.Int("year", year), zap.Error(err))
		fmt.Fprintln(w, describeError(err,
			fmt.Sprintf("CFBD API Error while fetching roster for %s", team),
			"An unexpected error occurred while fetching roster",
		))
		return "", nil, false
	}

	if position, ok := logic.FindPlayerPosition(roster, player); ok {
		return position, nil, true
	}
	return "", logic.SuggestPlayerNames(roster, player, maxSuggestions), false
}

// describeError builds the message shown for a failed request
func describeError(err error, apiPrefix string, unexpectedPrefix string) string {
	switch {
	case external.IsConfigurationError(err):
		return fmt.Sprintf("Configuration error: %v", err)
	case external.IsAPIError(err):
		return fmt.Sprintf("%s: %v", apiPrefix, err)
	default:
		return fmt.Sprintf("%s: %v", unexpectedPrefix, err)
	}
}
