/* input_processing.go
 * Contains the logic for cleaning and validating user input before any request is made
 */

package logic

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidYearMessage is shown when a year cannot be parsed
const InvalidYearMessage = "Invalid year. Please enter a valid integer for the year."

// ParseYear converts user input into a year.
// Preconditions: Receives the raw input, surrounding whitespace is ignored
// Postconditions: Returns the year, or an error if the input is not a base 10 integer
func ParseYear(input string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: %w", input, err)
	}
	return year, nil
}

// CleanArgs trims whitespace and any wrapping quotes from command arguments and drops the ones left empty.
// Straight and curly double quotes are both removed
func CleanArgs(args []string) []string {
	cleaned := make([]string, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		arg = strings.Trim(arg, "\"“”")
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		cleaned = append(cleaned, arg)
	}
	return cleaned
}
