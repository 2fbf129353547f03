package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/cardroom/blackjack/internal/config"
	"github.com/cardroom/blackjack/internal/display"
	"github.com/cardroom/blackjack/internal/game"
	"github.com/cardroom/blackjack/internal/randutil"
)

var (
	titleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#1B5E20")).
		Padding(0, 1).
		Bold(true)
)

type CLI struct {
	Chips    int    `short:"c" help:"Starting chip count (overrides config)" default:"0"`
	BetLimit int    `short:"b" help:"Maximum single bet (overrides config)" default:"0"`
	Decks    int    `short:"d" help:"Number of decks in the shoe, 4-8 (overrides config)" default:"0"`
	Seed     int64  `help:"RNG seed for the shuffle (0 for random)" default:"0"`
	Config   string `help:"Path to HCL table config" default:"blackjack.hcl"`
	Verbose  bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		log.Fatal("Failed to load config", "path", cli.Config, "error", err)
	}
	applyOverrides(cfg, cli)

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid table configuration", "error", err)
	}

	fmt.Print(titleStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	fmt.Println()
	fmt.Println()

	if err := runSession(cli, cfg); err != nil {
		log.Fatal("Game error", "error", err)
	}

	ctx.Exit(0)
}

func applyOverrides(cfg *config.TableConfig, cli CLI) {
	if cli.Chips > 0 {
		cfg.Chips = cli.Chips
	}
	if cli.BetLimit > 0 {
		cfg.BetLimit = cli.BetLimit
	}
	if cli.Decks > 0 {
		cfg.Decks = cli.Decks
	}
}

func runSession(cli CLI, cfg *config.TableConfig) error {
	// Log to a file so log lines never tear through the rendered table
	debugFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("failed to create debug log: %w", err)
	}
	defer func() {
		if err := debugFile.Close(); err != nil {
			log.Error("Failed to close debug file", "error", err)
		}
	}()

	level := log.InfoLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(debugFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "blackjack",
		Level:           level,
	})

	rng, seed := randutil.FromSeed(cli.Seed)
	logger.Info("starting session",
		"chips", cfg.Chips,
		"betLimit", cfg.BetLimit,
		"decks", cfg.Decks,
		"seed", seed)

	state, err := game.NewState(cfg.Chips, cfg.BetLimit, cfg.Decks, rng)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	console := display.NewConsole(os.Stdin, os.Stdout)
	engine := game.NewEngine(state, console, console, logger, rng,
		game.WithDealerDelay(time.Duration(cfg.DealerDelayMS)*time.Millisecond))

	reason, err := engine.Run()
	if err != nil {
		return err
	}

	switch reason {
	case game.SessionBroke:
		fmt.Println("You're out of chips. Better luck next time!")
	case game.SessionExited:
		fmt.Printf("Thanks for playing! You leave with %d chips.\n", engine.State().Chips)
	}
	printStats(engine.Stats())

	return nil
}

func printStats(stats game.Stats) {
	if stats.Rounds == 0 {
		return
	}
	fmt.Printf("Rounds: %d  W/L/P: %d/%d/%d  Blackjacks: %d  Net: %+d chips\n",
		stats.Rounds, stats.Wins, stats.Losses, stats.Pushes,
		stats.Blackjacks, stats.NetChips)
}
