/* test_mocks.go
 * Contains a mock CFBD client for testing the API package and the packages built on top of it
 */

package api

import (
	"context"
	"strings"

	"cfb-stats/api/external"
	"cfb-stats/api/shared"
)

// MockCall records a single call made to MockClient
type MockCall struct {
	Method   string
	Team     string
	Year     int
	Category string
}

// MockClient implements external.Interface for testing. Data is keyed by lower case team name (and category for
// player stats), so lookups behave like the real API which ignores case. Like the real client, a call made with a
// cancelled context fails with the context's error
type MockClient struct {
	// Storage for mock data
	AdvancedStats map[string][]shared.TeamStats
	Rosters       map[string][]shared.RosterEntry
	PlayerStats   map[string][]shared.PlayerRecord

	// Error injection for testing error paths
	AdvancedStatsError error
	RosterError        error
	PlayerStatsErrors  map[string]error

	// Calls holds every call made, in order
	Calls []MockCall
}

// Ensure MockClient implements external.Interface
var _ external.Interface = (*MockClient)(nil)

// NewMockClient creates a new MockClient with empty data
func NewMockClient() *MockClient {
	return &MockClient{
		AdvancedStats:     make(map[string][]shared.TeamStats),
		Rosters:           make(map[string][]shared.RosterEntry),
		PlayerStats:       make(map[string][]shared.PlayerRecord),
		PlayerStatsErrors: make(map[string]error),
	}
}

// SetAdvancedStats stores the advanced stats returned for a team
func (m *MockClient) SetAdvancedStats(team string, stats ...shared.TeamStats) {
	m.AdvancedStats[strings.ToLower(team)] = stats
}

// SetRoster stores the roster returned for a team
func (m *MockClient) SetRoster(team string, roster []shared.RosterEntry) {
	m.Rosters[strings.ToLower(team)] = roster
}

// SetPlayerStats stores the player records returned for a team and category
func (m *MockClient) SetPlayerStats(team string, category string, records []shared.PlayerRecord) {
	m.PlayerStats[playerStatsKey(team, category)] = records
}

// GetAdvancedSeasonStats mock implementation
func (m *MockClient) GetAdvancedSeasonStats(ctx context.Context, team string, year int) ([]shared.TeamStats, error) {
	m.Calls = append(m.Calls, MockCall{Method: "GetAdvancedSeasonStats", Team: team, Year: year})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.AdvancedStatsError != nil {
		return nil, m.AdvancedStatsError
	}
	return m.AdvancedStats[strings.ToLower(team)], nil
}

// GetRoster mock implementation
func (m *MockClient) GetRoster(ctx context.Context, team string, year int) ([]shared.RosterEntry, error) {
	m.Calls = append(m.Calls, MockCall{Method: "GetRoster", Team: team, Year: year})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.RosterError != nil {
		return nil, m.RosterError
	}
	return m.Rosters[strings.ToLower(team)], nil
}

// GetPlayerSeasonStats mock implementation
func (m *MockClient) GetPlayerSeasonStats(ctx context.Context, year int, team string, category string) ([]shared.PlayerRecord, error) {
	m.Calls = append(m.Calls, MockCall{Method: "GetPlayerSeasonStats", Team: team, Year: year, Category: category})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.PlayerStatsErrors[category]; ok && err != nil {
		return nil, err
	}
	return m.PlayerStats[playerStatsKey(team, category)], nil
}

// CallsTo returns the recorded calls to one method, in order
func (m *MockClient) CallsTo(method string) []MockCall {
	var calls []MockCall
	for _, call := range m.Calls {
		if call.Method == method {
			calls = append(calls, call)
		}
	}
	return calls
}

// CategoriesRequested returns the categories passed to GetPlayerSeasonStats, in order
func (m *MockClient) CategoriesRequested() []string {
	var categories []string
	for _, call := range m.CallsTo("GetPlayerSeasonStats") {
		categories = append(categories, call.Category)
	}
	return categories
}

func playerStatsKey(team string, category string) string {
	return strings.ToLower(team) + "|" + category
}
