/* bot_test.go
 * Contains unit tests for bot.go functions
 */

package bot

import (
	"strings"
	"testing"
	"time"

	"cfb-stats/api/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// region NewBot tests

func TestNewBot_Success(t *testing.T) {
	apiPtr, err := api.NewAPI(api.NewMockClient(), nil)
	require.NoError(t, err)

	bot, err := NewBot("test_token", apiPtr, nil)

	require.NoError(t, err)
	assert.Equal(t, "test_token", bot.BotToken)
	assert.Same(t, apiPtr, bot.APIPtr)
	assert.NotNil(t, bot.logger)
}

func TestNewBot_EmptyToken(t *testing.T) {
	apiPtr, err := api.NewAPI(api.NewMockClient(), nil)
	require.NoError(t, err)

	_, err = NewBot("", apiPtr, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "botToken is required")
}

func TestNewBot_MissingAPI(t *testing.T) {
	_, err := NewBot("test_token", nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "apiPtr is required")
}

// endregion

// region startsWith tests

func TestStartsWith_ExactMatch(t *testing.T) {
	assert.True(t, startsWith("$help", "$help"))
}

func TestStartsWith_WithArguments(t *testing.T) {
	assert.True(t, startsWith("$compare \"Ohio State\" Michigan 2023", "$compare"))
}

func TestStartsWith_LongerWord(t *testing.T) {
	assert.False(t, startsWith("$helpme", "$help"))
	assert.False(t, startsWith("$players", "$player"))
}

func TestStartsWith_NotAtStart(t *testing.T) {
	assert.False(t, startsWith("please $help", "$help"))
}

func TestStartsWith_CaseSensitive(t *testing.T) {
	assert.False(t, startsWith("$HELP", "$help"))
}

func TestStartsWith_EmptyInput(t *testing.T) {
	assert.False(t, startsWith("", "$help"))
}

// endregion

// region splitArgs tests

func TestSplitArgs_QuotedNames(t *testing.T) {
	args, err := splitArgs("$compare \"Ohio State\" \"Texas A&M\" 2023")

	require.NoError(t, err)
	assert.Equal(t, []string{"Ohio State", "Texas A&M", "2023"}, args)
}

func TestSplitArgs_UnquotedNames(t *testing.T) {
	args, err := splitArgs("$player Burrow LSU 2019")

	require.NoError(t, err)
	assert.Equal(t, []string{"Burrow", "LSU", "2019"}, args)
}

func TestSplitArgs_CurlyQuotes(t *testing.T) {
	args, err := splitArgs("$player “Joe Burrow” LSU 2019")

	require.NoError(t, err)
	assert.Equal(t, []string{"Joe Burrow", "LSU", "2019"}, args)
}

func TestSplitArgs_ExtraSpaces(t *testing.T) {
	args, err := splitArgs("  $player   \"Joe Burrow\"  LSU   2019  ")

	require.NoError(t, err)
	assert.Equal(t, []string{"Joe Burrow", "LSU", "2019"}, args)
}

func TestSplitArgs_CommandOnly(t *testing.T) {
	args, err := splitArgs("$compare")

	require.NoError(t, err)
	assert.Empty(t, args)
}

// endregion

// region chunkOutput tests

func TestChunkOutput_Short(t *testing.T) {
	chunks := chunkOutput("line one\nline two\n")

	assert.Equal(t, []string{"```\nline one\nline two\n```"}, chunks)
}

func TestChunkOutput_Empty(t *testing.T) {
	assert.Empty(t, chunkOutput(""))
	assert.Empty(t, chunkOutput("\n\n"))
}

func TestChunkOutput_SplitsOnLines(t *testing.T) {
	line := strings.Repeat("x", 99)
	var lines []string
	for i := 0; i < 50; i++ {
		lines = append(lines, line)
	}

	chunks := chunkOutput(strings.Join(lines, "\n"))

	require.Greater(t, len(chunks), 1)
	total := 0
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), maxMessageLength)
		assert.True(t, strings.HasPrefix(chunk, "```\n"))
		assert.True(t, strings.HasSuffix(chunk, "\n```"))
		body := strings.TrimSuffix(strings.TrimPrefix(chunk, "```\n"), "\n```")
		for _, l := range strings.Split(body, "\n") {
			assert.Equal(t, line, l)
			total++
		}
	}
	assert.Equal(t, 50, total)
}

func TestChunkOutput_LongLine(t *testing.T) {
	line := strings.Repeat("é", 3000)

	chunks := chunkOutput(line)

	require.Greater(t, len(chunks), 1)
	var rebuilt strings.Builder
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), maxMessageLength)
		rebuilt.WriteString(strings.TrimSuffix(strings.TrimPrefix(chunk, "```\n"), "\n```"))
	}
	assert.Equal(t, line, rebuilt.String())
}

func TestChunkOutput_InvalidUTF8(t *testing.T) {
	line := strings.Repeat("\x80", 2000)
	done := make(chan []string, 1)

	go func() {
		done <- chunkOutput(line)
	}()

	select {
	case chunks := <-done:
		require.Len(t, chunks, 2)
		var rebuilt strings.Builder
		for _, chunk := range chunks {
			assert.LessOrEqual(t, len(chunk), maxMessageLength)
			rebuilt.WriteString(strings.TrimSuffix(strings.TrimPrefix(chunk, "```\n"), "\n```"))
		}
		assert.Equal(t, line, rebuilt.String())
	case <-time.After(2 * time.Second):
		t.Fatal("chunkOutput did not return")
	}
}

// endregion
