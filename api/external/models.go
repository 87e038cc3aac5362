/* models.go
 * This file contains the interface, errors and models used by the external package when fetching data from the
 * CollegeFootballData API
 */

package external

import (
	"context"
	"fmt"

	"cfb-stats/api/shared"

	crerr "github.com/cockroachdb/errors"
)

// Interface is the set of remote operations the rest of the program consumes. The api package only ever depends on
// this interface so that tests can substitute a mock client
type Interface interface {
	GetAdvancedSeasonStats(ctx context.Context, team string, year int) ([]shared.TeamStats, error)
	GetRoster(ctx context.Context, team string, year int) ([]shared.RosterEntry, error)
	GetPlayerSeasonStats(ctx context.Context, year int, team string, category string) ([]shared.PlayerRecord, error)
}

// Ensure Client implements Interface
var _ Interface = (*Client)(nil)

// ErrMissingAPIKey is returned by every operation, before any request is made, when no API key is configured
var ErrMissingAPIKey = crerr.New(
	"API key not found. Please set the CFBD_API_KEY environment variable in a .env file or your system environment.",
)

// APIError is returned when the API answers with a non 200 status code
type APIError struct {
	StatusCode int
	Status     string
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("(%d) %s from %s", e.StatusCode, e.Status, e.Path)
	}
	return fmt.Sprintf("(%d) %s from %s: %s", e.StatusCode, e.Status, e.Path, e.Body)
}

// IsAPIError reports whether err is, or wraps, an *APIError
func IsAPIError(err error) bool {
	var apiErr *APIError
	return crerr.As(err, &apiErr)
}

// IsConfigurationError reports whether err was caused by missing configuration
func IsConfigurationError(err error) bool {
	return crerr.Is(err, ErrMissingAPIKey)
}
