/* utils.go
 * Utility functions used by main
 */

package main

import (
	"fmt"
	"strings"
)

const (
	modeConsole = "console"
	modeDiscord = "discord"
)

// parseMode validates the -mode flag
// Preconditions: Receives the flag value (case insensitive)
// Postconditions: Returns the normalised mode, or an error if it is not console or discord
func parseMode(mode string) (string, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))

	switch mode {
	case modeConsole, modeDiscord:
		return mode, nil
	case "":
		return modeConsole, nil
	}
	return "", fmt.Errorf("invalid mode %q, should be %s or %s", mode, modeConsole, modeDiscord)
}

// logLevel returns the level the logger should use. The -debug flag wins over the configured level
func logLevel(configured string, debug bool) string {
	if debug {
		return "debug"
	}
	return configured
}
