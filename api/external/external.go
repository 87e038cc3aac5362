/* external.go
 * Contains the client used to fetch data from the CollegeFootballData API. Each exported method maps to one remote
 * operation and returns decoded records with snake_case keys, or an error. Reporting errors to the user is left to
 * the api package
 */

package external

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cfb-stats/api/logging"
	"cfb-stats/api/shared"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL    = "https://api.collegefootballdata.com"
	defaultRatePerSec = 5.0
	userAgent         = "cfb-stats/1.0"
	maxErrorBodyBytes = 512
)

// ClientConfig holds the values needed to build a Client. Zero values fall back to sensible defaults
type ClientConfig struct {
	HTTPClient        *http.Client
	BaseURL           string
	APIKey            string
	RequestsPerSecond float64
	Logger            *zap.Logger
}

// Client talks to the CollegeFootballData API. Requests are made one at a time and paced by a rate limiter
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewClient creates a Client from cfg
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRatePerSec
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logging.OrNop(cfg.Logger),
	}
}

// GetAdvancedSeasonStats fetches the advanced season stats for a team
// Preconditions: Receives team name (spelling as the API expects it) and year
// Postconditions: Returns every record the API returned (usually zero or one), or an error if it occurs
func (c *Client) GetAdvancedSeasonStats(ctx context.Context, team string, year int) ([]shared.TeamStats, error) {
	params := url.Values{}
	params.Set("year", strconv.Itoa(year))
	params.Set("team", team)

	var raw []map[string]interface{}
	if err := c.getJSON(ctx, "/stats/season/advanced", params, &raw); err != nil {
		return nil, err
	}

	stats := make([]shared.TeamStats, 0, len(raw))
	for _, record := range raw {
		stats = append(stats, shared.TeamStats(NormalizeKeys(record)))
	}
	return stats, nil
}

// GetRoster fetches the roster for a team in a given year
// Preconditions: Receives team name and year
// Postconditions: Returns roster entries in the order the API returned them, or an error if it occurs
func (c *Client) GetRoster(ctx context.Context, team string, year int) ([]shared.RosterEntry, error) {
	params := url.Values{}
	params.Set("team", team)
	params.Set("year", strconv.Itoa(year))

	var raw []map[string]interface{}
	if err := c.getJSON(ctx, "/roster", params, &raw); err != nil {
		return nil, err
	}

	roster := make([]shared.RosterEntry, 0, len(raw))
	for _, record := range raw {
		roster = append(roster, ParseRosterEntry(NormalizeKeys(record)))
	}
	return roster, nil
}

// GetPlayerSeasonStats fetches the season stats for every player on a team within one stat category
// Preconditions: Receives year, team name and category (e.g. passing, rushing)
// Postconditions: Returns player records in API order, or an error if it occurs
func (c *Client) GetPlayerSeasonStats(ctx context.Context, year int, team string, category string) ([]shared.PlayerRecord, error) {
	params := url.Values{}
	params.Set("year", strconv.Itoa(year))
	params.Set("team", team)
	params.Set("category", category)

	var raw []map[string]interface{}
	if err := c.getJSON(ctx, "/stats/player/season", params, &raw); err != nil {
		return nil, err
	}

	records := make([]shared.PlayerRecord, 0, len(raw))
	for _, record := range raw {
		records = append(records, shared.PlayerRecord(NormalizeKeys(record)))
	}
	return records, nil
}

// getJSON performs an authenticated GET request and decodes the JSON body into out
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return crerr.Wrapf(err, "waiting to request %s", path)
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return crerr.Wrapf(err, "creating request for %s", path)
	}
	request.Header.Set("Authorization", "Bearer "+c.apiKey)
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Accept-Encoding", "gzip")
	request.Header.Set("User-Agent", userAgent)

	start := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		return crerr.Wrapf(err, "request to %s failed", path)
	}
	defer response.Body.Close()

	c.logger.Debug("cfbd request",
		zap.String("path", path),
		zap.String("query", params.Encode()),
		zap.Int("status", response.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	body, err := readBody(response)
	if err != nil {
		return crerr.Wrapf(err, "reading response from %s", path)
	}

	if response.StatusCode != http.StatusOK {
		if len(body) > maxErrorBodyBytes {
			body = body[:maxErrorBodyBytes]
		}
		return &APIError{
			StatusCode: response.StatusCode,
			Status:     http.StatusText(response.StatusCode),
			Path:       path,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := sonic.Unmarshal(body, out); err != nil {
		return crerr.Wrapf(err, "decoding response from %s", path)
	}
	return nil
}

// readBody reads the whole response body, decompressing it if the server sent gzip
func readBody(response *http.Response) ([]byte, error) {
	if response.Header.Get("Content-Encoding") != "gzip" {
		return io.ReadAll(response.Body)
	}

	reader, err := gzip.NewReader(response.Body)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}
