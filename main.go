/* main.go
 * The "main" method for running the stats tool. Starts the interactive console menu by default, or the Discord bot
 * Usage: go run . [-mode=console|discord] [-debug]
 */

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cfb-stats/api/api"
	"cfb-stats/api/config"
	"cfb-stats/api/external"
	"cfb-stats/api/logging"
	"cfb-stats/bot"
	"cfb-stats/cli"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	envErr := godotenv.Load()

	//Flags
	modePtr := flag.String("mode", modeConsole, "Front end to run: console or discord")
	debugPtr := flag.Bool("debug", false, "Log diagnostics at debug level, overrides LOG_LEVEL")

	flag.Parse()

	mode, err := parseMode(*modePtr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(logLevel(cfg.LogLevel, *debugPtr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Warn("no .env file loaded, using system environment", zap.Error(envErr))
	}
	if !cfg.HasAPIKey() {
		logger.Warn("CFBD_API_KEY is not set, every request will fail until it is")
	}

	client := external.NewClient(external.ClientConfig{
		BaseURL:           cfg.BaseURL,
		APIKey:            cfg.APIKey,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Logger:            logger,
	})
	statsAPI, err := api.NewAPI(client, logger)
	if err != nil {
		logger.Fatal("failed to initialize API", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, mode, cfg, statsAPI, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("exiting with error", zap.Error(err))
		stop()
		logger.Sync()
		os.Exit(1)
	}
}

// run starts the selected front end and blocks until it returns
func run(ctx context.Context, mode string, cfg config.Config, statsAPI *api.API, logger *zap.Logger) error {
	switch mode {
	case modeDiscord:
		discordBot, err := bot.NewBot(cfg.DiscordToken, statsAPI, logger)
		if err != nil {
			return fmt.Errorf("DISCORD_TOKEN must be set to run the bot: %w", err)
		}
		return discordBot.Run(ctx)
	default:
		return cli.NewMenu(os.Stdin, os.Stdout, statsAPI).Run(ctx)
	}
}
