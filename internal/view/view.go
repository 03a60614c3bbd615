// Package view derives per-seat UI-eligibility facts from a table
// snapshot. Everything is a pure function of (snapshot, seat); nothing
// here retains state between calls, so every snapshot replacement yields
// a fresh, consistent set of facts.
package view

import (
	"github.com/ryan-northplay/poker-client/internal/hand"
	"github.com/ryan-northplay/poker-client/internal/protocol"
)

// IsCurrentUser reports whether the seat belongs to the local user.
func IsCurrentUser(t *protocol.Table, seat protocol.Seat) bool {
	if t == nil {
		return false
	}
	return seat.Token == t.CurrentUser.SeatToken
}

// CanDeal reports whether the local user may deal from this seat: the
// game is started, the table is between hands, and the seat holds the
// dealer button.
func CanDeal(t *protocol.Table, seat protocol.Seat) bool {
	if t == nil {
		return false
	}
	return t.IsStarted &&
		t.BettingRound == protocol.RoundPreDeal &&
		IsCurrentUser(t, seat) &&
		seat.IsDealer
}

// CanBet reports whether the local user may act from this seat in the
// current betting round.
func CanBet(t *protocol.Table, seat protocol.Seat) bool {
	if t == nil {
		return false
	}
	return t.IsStarted &&
		IsCurrentUser(t, seat) &&
		t.BettingRound != protocol.RoundPreDeal &&
		seat.IsTurnToBet
}

// JoinURL returns the invite URL for the table. It exists only while the
// game has not started and an empty seat remains.
func JoinURL(t *protocol.Table, origin string) (string, bool) {
	if t == nil || t.IsStarted || !t.HasEmptySeat() {
		return "", false
	}
	return origin + "/" + t.Name, true
}

// CurrentPlayerHand evaluates the local user's best hand from their
// pocket cards plus the community cards. It returns nil until the seat
// has pocket cards and enough cards are visible to rank a hand.
func CurrentPlayerHand(t *protocol.Table) *hand.Hand {
	if t == nil {
		return nil
	}
	seat, ok := t.CurrentSeat()
	if !ok || len(seat.PocketCards) == 0 {
		return nil
	}
	h, err := hand.Evaluate(seat.PocketCards, t.CommunityCards)
	if err != nil {
		return nil
	}
	return h
}

// ShouldHighlight reports whether a community or pocket card should be
// highlighted as part of the current player's ranked hand. Tables created
// without the highlight option never highlight.
func ShouldHighlight(t *protocol.Table, h *hand.Hand, c protocol.Card) bool {
	if t == nil || !t.HighlightRelevantCards {
		return false
	}
	return h.Contains(c)
}
