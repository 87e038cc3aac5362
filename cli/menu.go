/* menu.go
 * Contains the interactive console menu. The menu only reads input and validates the year, all fetching and printing
 * is done by the api package
 */

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cfb-stats/api/api"
	"cfb-stats/api/logic"
	"cfb-stats/api/shared"
)

// Service is the part of api.API the menu drives
type Service interface {
	CompareTeams(ctx context.Context, w io.Writer, teamA string, teamB string, year int) api.ComparisonSummary
	GetPlayerStatsByName(ctx context.Context, w io.Writer, player string, team string, year int) (shared.CombinedStats, bool)
}

// Ensure *api.API implements Service
var _ Service = (*api.API)(nil)

// maxLineBytes is the longest input line the menu accepts
const maxLineBytes = 1024 * 1024

// Menu is the console front end
type Menu struct {
	in      io.Reader
	out     io.Writer
	service Service

	// lines is fed by the reader started in Run, it is closed once input ends
	lines   chan string
	readErr error
	done    chan struct{}
}

// NewMenu creates a menu that reads answers from in and writes everything to out
func NewMenu(in io.Reader, out io.Writer, service Service) *Menu {
	return &Menu{
		in:      in,
		out:     out,
		service: service,
	}
}

// Run shows the menu until the user exits, input ends or ctx is cancelled. Cancelling ctx returns straight away,
// even while waiting for input
// Preconditions: None
// Postconditions: Returns nil when the user exits or input ends, the context error if ctx was cancelled, or the read
// error if input could not be read
func (m *Menu) Run(ctx context.Context) error {
	m.startReader()
	defer close(m.done)

	fmt.Fprintln(m.out, "Welcome to the College Football Stats Comparator and Player Lookup!")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(m.out, "\nWhat would you like to do?")
		fmt.Fprintln(m.out, "1. Compare two teams' advanced stats")
		fmt.Fprintln(m.out, "2. Look up a player's season stats")
		fmt.Fprintln(m.out, "3. Exit")

		choice, err := m.prompt(ctx, "Enter your choice (1, 2, or 3): ")
		if err != nil {
			return m.finish(err)
		}

		switch choice {
		case "1":
			err = m.compareTeams(ctx)
		case "2":
			err = m.playerStats(ctx)
		case "3":
			fmt.Fprintln(m.out, "Exiting. Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please enter 1, 2, or 3.")
		}
		if err != nil {
			return m.finish(err)
		}
	}
}

// compareTeams reads two team names and a year then runs the comparison
func (m *Menu) compareTeams(ctx context.Context) error {
	answers, err := m.promptAll(ctx,
		"Enter the name of the first team: ",
		"Enter the name of the second team: ",
		"Enter the year: ",
	)
	if err != nil {
		return err
	}

	year, err := logic.ParseYear(answers[2])
	if err != nil {
		fmt.Fprintln(m.out, logic.InvalidYearMessage)
		return nil
	}
	m.service.CompareTeams(ctx, m.out, answers[0], answers[1], year)
	return nil
}

// playerStats reads a player name, team and year then prints the player's stats
func (m *Menu) playerStats(ctx context.Context) error {
	answers, err := m.promptAll(ctx,
		"Enter the player's full name (e.g., 'Joe Burrow'): ",
		"Enter the player's team: ",
		"Enter the year: ",
	)
	if err != nil {
		return err
	}

	year, err := logic.ParseYear(answers[2])
	if err != nil {
		fmt.Fprintln(m.out, logic.InvalidYearMessage)
		return nil
	}
	m.service.GetPlayerStatsByName(ctx, m.out, answers[0], answers[1], year)
	return nil
}

func (m *Menu) promptAll(ctx context.Context, prompts ...string) ([]string, error) {
	answers := make([]string, 0, len(prompts))
	for _, p := range prompts {
		answer, err := m.prompt(ctx, p)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

// prompt writes the prompt and waits for one trimmed line.
// Returns io.EOF once input has ended, the read error if reading failed, or the context error if ctx is cancelled first
func (m *Menu) prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprint(m.out, text)

	select {
	case <-ctx.Done():
		fmt.Fprintln(m.out)
		return "", ctx.Err()
	case line, ok := <-m.lines:
		if !ok {
			fmt.Fprintln(m.out)
			if m.readErr != nil {
				return "", m.readErr
			}
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// finish maps the error that stopped the menu to the value Run returns
func (m *Menu) finish(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		fmt.Fprintf(m.out, "Could not read input: %v\n", err)
	}
	return err
}

// startReader feeds input lines to m.lines until input ends or Run returns
func (m *Menu) startReader() {
	m.lines = make(chan string)
	m.done = make(chan struct{})

	go func() {
		defer close(m.lines)

		scanner := bufio.NewScanner(m.in)
		scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
		for scanner.Scan() {
			select {
			case m.lines <- scanner.Text():
			case <-m.done:
				return
			}
		}
		m.readErr = scanner.Err()
	}()
}
