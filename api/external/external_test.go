/* external_test.go
 * Contains unit tests for external.go HTTP functions using httptest
 */

package external

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string, apiKey string) *Client {
	return NewClient(ClientConfig{
		BaseURL:           serverURL,
		APIKey:            apiKey,
		RequestsPerSecond: 1000,
	})
}

// region GetAdvancedSeasonStats tests

func TestGetAdvancedSeasonStats_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/stats/season/advanced", r.URL.Path)
		assert.Equal(t, "2023", r.URL.Query().Get("year"))
		assert.Equal(t, "Ohio State", r.URL.Query().Get("team"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"season":2023,"team":"Ohio State","offense":{"totalPPA":312.5,"successRate":0.49,"havoc":{"frontSeven":0.1}}}]`))
	}))
	defer server.Close()

	stats, err := newTestClient(server.URL, "secret").GetAdvancedSeasonStats(context.Background(), "Ohio State", 2023)

	require.NoError(t, err)
	require.Len(t, stats, 1)
	offense, ok := stats[0].Section("offense")
	require.True(t, ok)
	assert.Equal(t, 312.5, offense["total_ppa"])
	assert.Equal(t, 0.49, offense["success_rate"])
	havoc, ok := offense["havoc"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 0.1, havoc["front_seven"])
}

func TestGetAdvancedSeasonStats_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	stats, err := newTestClient(server.URL, "secret").GetAdvancedSeasonStats(context.Background(), "Nowhere", 2023)

	require.NoError(t, err)
	assert.Empty(t, stats)
}

// endregion

// region GetRoster tests

func TestGetRoster_BuildsNamesFromFirstAndLast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/roster", r.URL.Path)
		assert.Equal(t, "LSU", r.URL.Query().Get("team"))
		w.Write([]byte(`[
			{"id":"3915511","firstName":"Joe","lastName":"Burrow","team":"LSU","position":"QB","jersey":9,"year":4},
			{"id":4035004,"firstName":"Ja'Marr","lastName":"Chase","team":"LSU","position":"WR","jersey":1,"year":2}
		]`))
	}))
	defer server.Close()

	roster, err := newTestClient(server.URL, "secret").GetRoster(context.Background(), "LSU", 2019)

	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "Joe Burrow", roster[0].Name)
	assert.Equal(t, "QB", roster[0].Position)
	assert.Equal(t, "3915511", roster[0].ID)
	assert.Equal(t, 9, roster[0].Jersey)
	assert.Equal(t, "Ja'Marr Chase", roster[1].Name)
	assert.Equal(t, "4035004", roster[1].ID)
}

// endregion

// region GetPlayerSeasonStats tests

func TestGetPlayerSeasonStats_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stats/player/season", r.URL.Path)
		assert.Equal(t, "passing", r.URL.Query().Get("category"))
		assert.Equal(t, "2019", r.URL.Query().Get("year"))
		w.Write([]byte(`[{"athleteId":"3915511","player":"Joe Burrow","team":"LSU","conference":"SEC","category":"passing","completions":402}]`))
	}))
	defer server.Close()

	records, err := newTestClient(server.URL, "secret").GetPlayerSeasonStats(context.Background(), 2019, "LSU", "passing")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Joe Burrow", records[0].PlayerName())
	assert.Equal(t, "3915511", records[0]["athlete_id"])
	assert.Equal(t, float64(402), records[0]["completions"])
}

// endregion

// region error handling tests

func TestGetJSON_MissingAPIKeyMakesNoRequest(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, "").GetRoster(context.Background(), "LSU", 2019)

	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.False(t, IsAPIError(err))
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestGetJSON_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`Unauthorized`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, "bad-key").GetAdvancedSeasonStats(context.Background(), "LSU", 2019)

	require.Error(t, err)
	assert.True(t, IsAPIError(err))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "/stats/season/advanced", apiErr.Path)
	assert.Contains(t, err.Error(), "401")
}

func TestGetJSON_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, "secret").GetRoster(context.Background(), "LSU", 2019)

	require.Error(t, err)
	assert.False(t, IsAPIError(err))
	assert.False(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), "decoding response from /roster")
}

func TestGetJSON_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	_, err := newTestClient(serverURL, "secret").GetRoster(context.Background(), "LSU", 2019)

	require.Error(t, err)
	assert.False(t, IsAPIError(err))
}

func TestGetJSON_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server.URL, "secret").GetRoster(ctx, "LSU", 2019)

	assert.Error(t, err)
}

// TestGetJSON_GzipResponse tests handling of gzip-encoded responses
func TestGetJSON_GzipResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gzip", r.Header.Get("Accept-Encoding"))

		var buf bytes.Buffer
		gzWriter := gzip.NewWriter(&buf)
		gzWriter.Write([]byte(`[{"firstName":"Joe","lastName":"Burrow","position":"QB"}]`))
		gzWriter.Close()

		w.Header().Set("Content-Encoding", "gzip")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}))
	defer server.Close()

	roster, err := newTestClient(server.URL, "secret").GetRoster(context.Background(), "LSU", 2019)

	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "Joe Burrow", roster[0].Name)
}

// endregion

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(ClientConfig{BaseURL: "  https://example.com/  "})

	assert.Equal(t, "https://example.com", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.limiter)
	assert.NotNil(t, client.logger)

	client = NewClient(ClientConfig{})
	assert.Equal(t, defaultBaseURL, client.baseURL)
}
