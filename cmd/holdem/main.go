package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-engine/internal/config"
	"github.com/lox/holdem-engine/internal/game"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Hands   int    `default:"10" help:"Number of hands to play"`
	Players int    `short:"p" default:"6" help:"Number of seats (2-10)"`
	Config  string `short:"c" default:"holdem.hcl" help:"Table configuration file" type:"path"`
	Seed    int64  `default:"0" help:"RNG seed (0 for random)"`
	NoColor bool   `help:"Disable colored output"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	if cli.Players < 2 || cli.Players > 10 {
		logger.Fatal("Invalid number of players", "players", cli.Players)
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Fatal("Failed to load configuration", "path", cli.Config, "error", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", "error", err)
	}

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	fmt.Println(titleStyle.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
	fmt.Printf("%d seats, blinds %d/%d, seed %d\n\n",
		cli.Players, cfg.Table.SmallBlind, cfg.Table.BigBlind, seed)

	names := make([]string, cli.Players)
	for i := range names {
		names[i] = fmt.Sprintf("Player-%d", i+1)
	}

	engine := game.NewGameEngine(names,
		game.WithConfig(cfg.Table),
		game.WithRNG(rng),
		game.WithLogger(logger))
	engine.EventBus().Subscribe(&narrator{engine: engine})

	if err := runSimulation(engine, cli.Hands, rng, logger); err != nil {
		logger.Fatal("Simulation failed", "error", err)
	}

	printStandings(engine)
	ctx.Exit(0)
}

func runSimulation(engine *game.GameEngine, hands int, rng *rand.Rand, logger *log.Logger) error {
	for hand := 0; hand < hands; hand++ {
		if err := engine.StartHand(); err != nil {
			if hand > 0 {
				logger.Info("Stopping early", "handsPlayed", hand, "reason", err)
				return nil
			}
			return err
		}

		for engine.HandInProgress() {
			seat := engine.SeatToAct()
			action, amount := choose(engine.LegalActions(seat), rng)
			if _, err := engine.ApplyAction(seat, action, amount); err != nil {
				return fmt.Errorf("seat %d %s: %w", seat, action, err)
			}
		}
	}
	return nil
}

// choose picks a weighted random action: mostly passive, raising with a small
// raise roughly a quarter of the time it is offered, folding rarely when a
// free check exists.
func choose(actions []game.ValidAction, rng *rand.Rand) (game.Action, int) {
	var check, call, raise *game.ValidAction
	for i := range actions {
		switch actions[i].Action {
		case game.Check:
			check = &actions[i]
		case game.Call:
			call = &actions[i]
		case game.Raise:
			raise = &actions[i]
		}
	}

	if raise != nil && rng.Intn(4) == 0 {
		span := raise.Max - raise.Min
		amount := raise.Min
		if span > 0 {
			// Bias towards the bottom of the legal range.
			amount += rng.Intn(span/4 + 1)
		}
		return game.Raise, amount
	}
	if check != nil {
		return game.Check, 0
	}
	if call != nil && rng.Intn(3) > 0 {
		return game.Call, 0
	}
	return game.Fold, 0
}

// narrator prints a play-by-play from the engine's events.
type narrator struct {
	engine *game.GameEngine
}

func (n *narrator) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.HandStartEvent:
		fmt.Printf("--- hand %s (button seat %d) ---\n", e.HandID, e.Button)

	case game.PlayerActionEvent:
		line := fmt.Sprintf("  %s %s", e.Name, e.Action)
		if e.Amount > 0 {
			line += fmt.Sprintf(" %d", e.Amount)
		}
		fmt.Printf("%s (pot %d)\n", line, e.Pot)

	case game.StreetChangeEvent:
		fmt.Printf("  %s %s pot %d\n", e.Street, game.RenderCards(e.Board), e.Pot)

	case game.HandEndEvent:
		for _, payout := range e.Payouts {
			seat := n.engine.Snapshot().Seats[payout.Seat]
			if e.Showdown {
				fmt.Printf("  %s wins %d with %s %s\n",
					seat.Name, payout.Amount, payout.Hand.Rank, game.RenderCards(payout.Hand.Cards))
			} else {
				fmt.Printf("  %s wins %d uncontested\n", seat.Name, payout.Amount)
			}
		}
		fmt.Println()
	}
}

func printStandings(engine *game.GameEngine) {
	fmt.Println(titleStyle.Render(" standings "))
	fmt.Println(game.RenderSnapshot(engine.Snapshot()))
}
