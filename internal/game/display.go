package game

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-engine/poker"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	redCard     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	blackCard   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	potStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	actorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderCard formats one card with suit colouring.
func RenderCard(c poker.Card) string {
	if c.IsRed() {
		return redCard.Render(c.String())
	}
	return blackCard.Render(c.String())
}

// RenderCards formats a card group like [A♠ K♥ 7♦].
func RenderCards(cards []poker.Card) string {
	if len(cards) == 0 {
		return ""
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = RenderCard(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// RenderSnapshot formats a table snapshot for terminal output: street and
// board, pot layers, then one row per seat.
func RenderSnapshot(s Snapshot) string {
	var b strings.Builder

	header := strings.ToUpper(s.Street.String())
	if len(s.Board) > 0 {
		header += " " + RenderCards(s.Board)
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	for i, pot := range s.Pots {
		label := "Pot"
		if i > 0 {
			label = fmt.Sprintf("Side pot %d", i)
		}
		b.WriteString(potStyle.Render(fmt.Sprintf("%s: %d", label, pot.Amount)))
		b.WriteString("\n")
	}

	for _, seat := range s.Seats {
		b.WriteString(renderSeat(seat, s))
		b.WriteString("\n")
	}
	return b.String()
}

func renderSeat(seat SeatView, s Snapshot) string {
	marker := "  "
	if seat.Seat == s.Button {
		marker = "D "
	}

	line := fmt.Sprintf("%s%-10s %6d", marker, seat.Name, seat.Chips)
	if seat.Bet > 0 {
		line += fmt.Sprintf("  bet %d", seat.Bet)
	}
	if len(seat.HoleCards) > 0 {
		line += "  " + RenderCards(seat.HoleCards)
	}

	switch {
	case seat.Seat == s.SeatToAct:
		return actorStyle.Render(line + "  to act")
	case seat.Status == StatusFolded:
		return mutedStyle.Render(line + "  folded")
	case seat.Status == StatusAllIn:
		return line + "  all-in"
	case seat.Status == StatusSittingOut:
		return mutedStyle.Render(line + "  sitting out")
	default:
		return line
	}
}
