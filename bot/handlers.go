/* handlers.go
 * Contains testable handler methods that accept DiscordSession interface
 */

package bot

import (
	"context"
	"strings"

	"cfb-stats/api/logic"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	compareUsage = "Usage: `$compare \"Team A\" \"Team B\" year`"
	playerUsage  = "Usage: `$player \"First Last\" \"Team\" year`"
)

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("CFB Stats Bot v1.0\n")
	res.WriteString("`$compare \"Team A\" \"Team B\" year`: Compares the advanced season stats of two teams. Only the stats the first team has are listed\n")
	res.WriteString("`$player \"First Last\" \"Team\" year`: Shows a player's season stats for every category that applies to their position\n")
	res.WriteString("Names that contain two or more words need to be encased in \" (e.g. \"Ohio State\")\n")
	res.WriteString("Supported positions: " + strings.Join(logic.SupportedPositions(), ", ") + "\n")
	b.send(session, message.ChannelID, res.String())
}

// compareHandler handles the $compare command with a DiscordSession interface
func (b *Bot) compareHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	teamA, teamB, year, ok := b.parseThreeArgs(session, message, compareUsage)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var res strings.Builder
	summary := b.APIPtr.CompareTeams(ctx, &res, teamA, teamB, year)
	b.logger.Debug("compare command handled",
		zap.String("teamA", teamA), zap.String("teamB", teamB), zap.Int("year", year),
		zap.Strings("sections", summary.Sections), zap.Int("rows", summary.Rows))
	b.sendOutput(session, message.ChannelID, res.String())
}

// playerHandler handles the $player command with a DiscordSession interface
func (b *Bot) playerHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	player, team, year, ok := b.parseThreeArgs(session, message, playerUsage)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var res strings.Builder
	stats, found := b.APIPtr.GetPlayerStatsByName(ctx, &res, player, team, year)
	b.logger.Debug("player command handled",
		zap.String("player", player), zap.String("team", team), zap.Int("year", year),
		zap.Bool("found", found), zap.Int("stats", len(stats)))
	b.sendOutput(session, message.ChannelID, res.String())
}

// parseThreeArgs reads two names and a year from a command. On bad input the usage or year error is sent and ok is
// false
func (b *Bot) parseThreeArgs(session DiscordSession, message *discordgo.MessageCreate, usage string) (string, string, int, bool) {
	args, err := splitArgs(message.Content)
	if err != nil || len(args) != 3 {
		if err != nil {
			b.logger.Debug("could not split command", zap.String("content", message.Content), zap.Error(err))
		}
		b.send(session, message.ChannelID, usage)
		return "", "", 0, false
	}

	year, err := logic.ParseYear(args[2])
	if err != nil {
		b.send(session, message.ChannelID, logic.InvalidYearMessage+"\n"+usage)
		return "", "", 0, false
	}
	return args[0], args[1], year, true
}

// sendOutput sends captured console output as one or more code fenced messages
func (b *Bot) sendOutput(session DiscordSession, channelID string, output string) {
	for _, chunk := range chunkOutput(output) {
		if !b.send(session, channelID, chunk) {
			return
		}
	}
}

func (b *Bot) send(session DiscordSession, channelID string, content string) bool {
	if _, err := session.ChannelMessageSend(channelID, content); err != nil {
		b.logger.Warn("failed to send message", zap.String("channel", channelID), zap.Error(err))
		return false
	}
	return true
}

// newMessageHandler routes messages to appropriate handlers with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses. Requests made for a command are cancelled with ctx
func (b *Bot) newMessageHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author == nil || message.Author.ID == botUserID {
		return
	}

	// Route to appropriate handler
	switch {
	case startsWith(message.Content, "$help"):
		b.helpMessageHandler(session, message)

	case startsWith(message.Content, "$compare"):
		session.ChannelTyping(message.ChannelID)
		b.compareHandler(ctx, session, message)

	case startsWith(message.Content, "$player"):
		session.ChannelTyping(message.ChannelID)
		b.playerHandler(ctx, session, message)
	}
}
