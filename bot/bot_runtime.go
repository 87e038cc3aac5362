//go:build !test

/* bot_runtime.go
 * Contains runtime-only Discord bot methods that use *discordgo.Session directly.
 * Delegates to testable handlers in handlers.go
 */

package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Run starts the Discord bot and listens for messages until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	// create a session
	discord, err := discordgo.New("Bot " + b.BotToken)
	if err != nil {
		return fmt.Errorf("failed to create discord session: %w", err)
	}

	// add a event handler, commands still running at shutdown are cancelled with ctx
	discord.AddHandler(func(session *discordgo.Session, message *discordgo.MessageCreate) {
		b.newMessage(ctx, session, message)
	})
	discord.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent

	// open session
	if err := discord.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	defer discord.Close()

	b.logger.Info("CFB Stats Bot started")
	<-ctx.Done()
	b.logger.Info("CFB Stats Bot stopping", zap.Error(ctx.Err()))
	return nil
}

// newMessage delegates to the testable newMessageHandler
// *discordgo.Session implements DiscordSession interface
func (b *Bot) newMessage(ctx context.Context, discord *discordgo.Session, message *discordgo.MessageCreate) {
	b.newMessageHandler(ctx, discord, message, discord.State.User.ID)
}
