/* bot.go
 * Contains the Bot type and the helpers shared by its handlers. Requires a discord bot token and an API pointer, both
 * of which are passed in from main.go
 */

package bot

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"cfb-stats/api/api"
	"cfb-stats/api/logging"
	"cfb-stats/api/logic"

	"github.com/go-andiamo/splitter"
	"go.uber.org/zap"
)

const (
	// maxMessageLength keeps each message, including its code fence, under Discord's 2000 character limit
	maxMessageLength = 1900
	codeFence        = "```"
	// requestTimeout bounds the work done for a single command
	requestTimeout = 2 * time.Minute
)

type Bot struct {
	BotToken string
	APIPtr   *api.API
	logger   *zap.Logger
}

func NewBot(botToken string, apiPtr *api.API, logger *zap.Logger) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}
	if apiPtr == nil {
		return nil, fmt.Errorf("apiPtr is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
		logger:   logging.OrNop(logger),
	}, nil
}

// splitArgs splits a command on spaces, keeping double quoted names such as "Ohio State" together. The command
// itself is dropped
// Preconditions: Receives the full message content
// Postconditions: Returns the unquoted arguments, or an error if the quotes are unbalanced
func splitArgs(content string) ([]string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := spaceSplitter.Split(strings.TrimSpace(content))
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, nil
	}
	return logic.CleanArgs(parts[1:]), nil
}

// chunkOutput splits output into code fenced messages no longer than maxMessageLength. Lines are kept whole unless a
// single line is too long to fit
func chunkOutput(output string) []string {
	output = strings.Trim(output, "\n")
	if output == "" {
		return nil
	}

	limit := maxMessageLength - 2*len(codeFence) - 2
	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		chunks = append(chunks, codeFence+"\n"+current.String()+"\n"+codeFence)
		current.Reset()
	}

	for _, line := range strings.Split(output, "\n") {
		for len(line) > limit {
			cut := limit
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			// no rune boundary in range, the line is not valid UTF-8
			if cut == 0 {
				cut = limit
			}
			flush()
			current.WriteString(line[:cut])
			flush()
			line = line[cut:]
		}
		if current.Len() > 0 && current.Len()+1+len(line) > limit {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	flush()
	return chunks
}

// startsWith reports whether the message is the given command, either alone or followed by a space
func startsWith(content string, command string) bool {
	if !strings.HasPrefix(content, command) {
		return false
	}
	rest := content[len(command):]
	return rest == "" || rest[0] == ' '
}
