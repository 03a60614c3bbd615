package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ryan-northplay/poker-client/internal/hand"
	"github.com/ryan-northplay/poker-client/internal/protocol"
	"github.com/ryan-northplay/poker-client/internal/view"
)

// renderTable draws the whole table from one snapshot. It is called on
// every snapshot replacement, never incrementally.
func renderTable(table *protocol.Table) {
	if table == nil {
		pterm.Info.Println("no table — join or create one")
		return
	}

	box := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2)
	currentHand := view.CurrentPlayerHand(table)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  [%s]\n", pterm.Bold.Sprint(table.Name), table.BettingRound)

	if url, ok := view.JoinURL(table, "https://"+table.Name+".invalid"); ok {
		fmt.Fprintf(&b, "invite: %s\n", url)
	}

	fmt.Fprintf(&b, "pot: %d", table.ActivePot.ChipCount)
	for _, p := range table.SplitPots {
		if p.ChipCount > 0 {
			fmt.Fprintf(&b, " | split: %d (%s)", p.ChipCount, strings.Join(p.Players, ", "))
		}
	}
	b.WriteString("\n")

	b.WriteString("board: ")
	b.WriteString(renderCards(table, currentHand, table.CommunityCards))
	b.WriteString("\n")

	for _, seat := range table.Seats {
		b.WriteString(renderSeat(table, currentHand, seat))
		b.WriteString("\n")
	}

	if currentHand != nil {
		fmt.Fprintf(&b, "your hand: %s\n", currentHand.Description)
	}

	pterm.Println(box.Sprint(strings.TrimRight(b.String(), "\n")))
}

func renderSeat(table *protocol.Table, currentHand *hand.Hand, seat protocol.Seat) string {
	if seat.IsEmpty {
		return "  [empty seat]"
	}

	var marks []string
	if seat.IsDealer {
		marks = append(marks, "D")
	}
	if seat.IsTurnToBet {
		marks = append(marks, "turn")
	}
	if seat.IsFolded {
		marks = append(marks, "folded")
	}
	if seat.IsBust {
		marks = append(marks, "bust")
	}
	if view.IsCurrentUser(table, seat) {
		marks = append(marks, "you")
	}

	line := fmt.Sprintf("  %-12s chips:%-5d bet:%-5d", seat.DisplayName, seat.ChipCount, seat.ChipsBetCount)
	if len(seat.PocketCards) > 0 {
		line += "  " + renderCards(table, currentHand, seat.PocketCards)
	}
	if len(marks) > 0 {
		line += "  (" + strings.Join(marks, ", ") + ")"
	}
	return line
}

func renderCards(table *protocol.Table, currentHand *hand.Hand, cards protocol.Cards) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		s := renderCard(c)
		if view.ShouldHighlight(table, currentHand, c) {
			s = pterm.LightYellow(s)
		}
		parts[i] = s
	}
	return strings.Join(parts, " ")
}

func renderCard(c protocol.Card) string {
	var suit string
	switch c.Suit {
	case protocol.SuitClubs:
		suit = "♣"
	case protocol.SuitDiamonds:
		suit = pterm.LightRed("♦")
	case protocol.SuitHearts:
		suit = pterm.LightRed("♥")
	case protocol.SuitSpades:
		suit = "♠"
	}
	return strings.ToUpper(string(c.Face)) + suit
}
