/* config.go
 * Contains the runtime configuration for the stats tool. Values are read from the environment (after main has loaded
 * any .env file) and validated before the rest of the program is wired together
 */

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultBaseURL           = "https://api.collegefootballdata.com"
	DefaultRequestsPerSecond = 5.0
	DefaultLogLevel          = "warn"
)

// Config stores runtime configuration. APIKey is not validated here, each operation that needs the network reports a
// missing key itself
type Config struct {
	APIKey            string
	BaseURL           string  `validate:"required,url"`
	RequestsPerSecond float64 `validate:"gt=0"`
	LogLevel          string  `validate:"oneof=debug info warn error"`
	DiscordToken      string
}

// Load reads the configuration from environment variables
// Preconditions: None, all values have defaults apart from CFBD_API_KEY and DISCORD_TOKEN
// Postconditions: Returns a validated Config, or an error if a value is malformed
func Load() (Config, error) {
	rps, err := getEnvAsFloat("CFBD_REQUESTS_PER_SECOND", DefaultRequestsPerSecond)
	if err != nil {
		return Config{}, fmt.Errorf("invalid CFBD_REQUESTS_PER_SECOND: %w", err)
	}

	cfg := Config{
		APIKey:            strings.TrimSpace(os.Getenv("CFBD_API_KEY")),
		BaseURL:           strings.TrimRight(strings.TrimSpace(getEnv("CFBD_BASE_URL", DefaultBaseURL)), "/"),
		RequestsPerSecond: rps,
		LogLevel:          strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", DefaultLogLevel))),
		DiscordToken:      strings.TrimSpace(os.Getenv("DISCORD_TOKEN")),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the struct tags on Config
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// HasAPIKey reports whether a CFBD key was supplied
func (c Config) HasAPIKey() bool {
	return c.APIKey != ""
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}

	return out, nil
}
