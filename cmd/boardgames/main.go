package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/justinabrahms/boardgames/internal/cli"
	"github.com/justinabrahms/boardgames/internal/config"
	"github.com/justinabrahms/boardgames/internal/game"
)

func main() {
	// Parse command line flags
	var (
		showHelp bool
		gameType string
		modified bool
	)
	flag.BoolVar(&showHelp, "help", false, "Show help information")
	flag.BoolVar(&showHelp, "h", false, "Show help information")
	flag.StringVar(&gameType, "game", "", "Game to play: chess or checkers")
	flag.BoolVar(&modified, "modified", false, "Play chess with lancers, assassins and fortresses")
	flag.Parse()

	if showHelp {
		showHelpMessage()
		return
	}

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	setupLogging(cfg.Log)

	if gameType != "" {
		cfg.Game.Type = gameType
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "modified" {
			cfg.Game.Modified = modified
			cfg.Game.AskModified = false
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid settings")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	console := cli.NewConsole(os.Stdin, os.Stdout)

	gt, ok := cfg.GameType()
	useModified := cfg.Game.Modified
	if !ok {
		var chosen bool
		gt, useModified, chosen, err = console.ChooseGame(cfg.Game.AskModified)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read game choice")
		}
		if !chosen {
			return
		}
		if !cfg.Game.AskModified {
			useModified = cfg.Game.Modified
		}
	}
	if gt != game.Chess {
		useModified = false
	}

	session := game.NewSession(gt, useModified)
	if err := console.Run(ctx, session); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("Game aborted")
	}

	log.Info().Str("session", session.ID()).Int("moveCount", session.MoveCount()).Msg("Game exited")
}

func setupLogging(cfg config.LogConfig) {
	// Logs go to stderr so they never interleave with the board on stdout.
	if cfg.Pretty {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func showHelpMessage() {
	fmt.Println(`boardgames

DESCRIPTION:
    Play chess or checkers on an 8x8 board in the terminal, two players
    sharing one keyboard. Chess can be played with three extra pieces:
    the lancer (L), the assassin (A) and the fortress (F).

USAGE:
    boardgames [OPTIONS]

OPTIONS:
    -h, --help        Show this help message
    -game NAME        chess or checkers (asked at startup when omitted)
    -modified         Use the new chess pieces

CONFIGURATION:
    Read from config.yaml in the current directory or ./config, and from
    BOARDGAMES_* environment variables (BOARDGAMES_GAME_TYPE, ...).

    Example config.yaml:
        game:
          type: chess
          modified: false
          ask_modified: true
        log:
          level: info
          pretty: true

PLAYING:
    Select a piece by its square (e.g. e2), then enter its destination.
    Board markers:
        *   square the selected piece can move to
        !   checkers jump landing
        ?   your piece that an opponent piece can reach
        #   your king in check
    Commands:
        undo        take back the last move
        undo N      take back N moves
        cancel      pick another piece (while choosing a destination)
        quit        leave the game

EXAMPLES:
    # Ask for the game at startup
    boardgames

    # Modified chess with debug logging
    BOARDGAMES_LOG_LEVEL=debug boardgames -game chess -modified`)
}
