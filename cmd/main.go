package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/card-ecs/content"
	"github.com/luca-patrignani/card-ecs/game"
)

func main() {
	cfg, rounds, err := loadConfig(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, _ := cfg.Level()
	logger := slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(level))))

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Card ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("ECS", pterm.FgRed.ToStyle()),
	).Render()

	catalog := content.Standard()
	if cfg.Catalog != "" {
		catalog, err = content.LoadFile(cfg.Catalog)
		if err != nil {
			logger.Error("failed to load catalog", "path", cfg.Catalog, "error", err)
			os.Exit(1)
		}
	}
	manager, err := content.NewManager(catalog)
	if err != nil {
		logger.Error("invalid catalog", "error", err)
		os.Exit(1)
	}

	session, err := game.NewSession(cfg, manager, game.WithLogger(logger))
	if err != nil {
		logger.Error("failed to start session", "error", err)
		os.Exit(1)
	}
	pterm.Info.Printfln("Playing %d round(s) with %s (%d cards)", rounds, session.DeckName(), session.Remaining())

	total := 0
	for round := 1; round <= rounds; round++ {
		spinner, _ := pterm.DefaultSpinner.Start("Drawing cards ...")
		drawn, err := session.Draw(session.HandSize())
		if err != nil {
			spinner.Fail()
			logger.Error("draw failed", "error", err)
			os.Exit(1)
		}
		if len(drawn) == 0 {
			spinner.Warning("The deck is empty")
			break
		}
		spinner.Success()

		hand := session.HandCards()
		description, err := session.Describe()
		if err != nil {
			logger.Debug("no description for hand", "cards", len(hand), "error", err)
		}
		result, err := session.Play()
		if err != nil {
			logger.Error("play failed", "error", err)
			os.Exit(1)
		}
		total += result.BaseScore
		printRound(round, hand, result, description, session.Remaining())
	}

	pterm.Info.Printfln("Total score: %d", total)
	printLedger(session.Ledger())
	if err := session.Ledger().Verify(); err != nil {
		pterm.Error.Printfln("Ledger verification failed: %v", err)
		os.Exit(1)
	}
	pterm.Success.Printfln("Ledger verified (%d blocks)", session.Ledger().Len())
}

// loadConfig reads the optional config file and applies the flags that were
// set explicitly on top of it.
func loadConfig(args []string, output io.Writer) (game.Config, int, error) {
	fs := flag.NewFlagSet("card-ecs", flag.ContinueOnError)
	fs.SetOutput(output)
	configPath := fs.String("config", "", "path to a YAML session config")
	seed := fs.Int("seed", 0, "seed for a reproducible shuffle")
	deckID := fs.String("deck", game.DefaultDeck, "id of the deck to play")
	handSize := fs.Int("hand", game.DefaultHandSize, "maximum number of cards in the hand")
	catalog := fs.String("catalog", "", "JSON or YAML card catalog (defaults to the embedded standard deck)")
	rounds := fs.Int("rounds", 1, "number of rounds to play")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	noShuffle := fs.Bool("no-shuffle", false, "draw in deck order")
	if err := fs.Parse(args); err != nil {
		return game.Config{}, 0, err
	}

	cfg := game.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = game.LoadConfigFile(*configPath); err != nil {
			return game.Config{}, 0, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			s := *seed
			cfg.Seed = &s
		case "deck":
			cfg.Deck = *deckID
		case "hand":
			cfg.HandSize = *handSize
		case "catalog":
			cfg.Catalog = *catalog
		case "log-level":
			cfg.LogLevel = *logLevel
		case "no-shuffle":
			cfg.Shuffle = !*noShuffle
		}
	})
	if *rounds < 1 {
		return game.Config{}, 0, fmt.Errorf("%w: rounds must be at least 1, got %d", game.ErrInvalidConfig, *rounds)
	}
	return cfg, *rounds, cfg.Validate()
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
