package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-engine/poker"
)

type CLI struct {
	Hands      []string `arg:"" required:"" help:"Player hands in two-card notation, e.g. AcKd QhJs"`
	Board      string   `short:"b" help:"Community board cards (e.g. Td7s8h)"`
	Iterations int      `short:"i" default:"100000" help:"Number of Monte Carlo runouts"`
	Seed       *int64   `help:"Random seed for reproducible results"`
	NoColor    bool     `help:"Disable colored output"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	handStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	tieStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	equityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	var seed int64
	if cli.Seed != nil {
		seed = *cli.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	holes, err := parseHands(cli.Hands)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing hands: %v\n", err)
		ctx.Exit(1)
	}

	var board []poker.Card
	if cli.Board != "" {
		board, err = poker.ParseCards(cli.Board)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing board: %v\n", err)
			ctx.Exit(1)
		}
	}

	start := time.Now()
	equities, err := poker.SimulateEquity(holes, board, cli.Iterations, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
	duration := time.Since(start)

	display(holes, board, equities)
	fmt.Printf("\n%d runouts in %v\n", cli.Iterations, duration.Truncate(time.Millisecond))
}

func parseHands(handStrings []string) ([][]poker.Card, error) {
	var holes [][]poker.Card
	for i, s := range handStrings {
		hole, err := poker.ParseCards(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(hole) != 2 {
			return nil, fmt.Errorf("hand %d: must contain exactly 2 cards, got %d", i+1, len(hole))
		}
		holes = append(holes, hole)
	}
	return holes, nil
}

func display(holes [][]poker.Card, board []poker.Card, equities []poker.Equity) {
	if len(board) > 0 {
		fmt.Printf("%s\n%s\n\n", headerStyle.Render("board"), formatCards(board))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("category"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("equity"))

	for i, eq := range equities {
		category := poker.CategorizeHoleCards(holes[i][0], holes[i][1])
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			handStyle.Render(formatCards(holes[i])),
			string(category),
			winStyle.Render(fmt.Sprintf("%.1f%%", eq.WinPct()*100)),
			tieStyle.Render(fmt.Sprintf("%.1f%%", eq.TiePct()*100)),
			equityStyle.Render(fmt.Sprintf("%.1f%%", eq.Total()*100)))
	}
	w.Flush()
}

func formatCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
