// Package hand adapts the external card-evaluation library to the wire
// card model. Everything here is pure: no state is retained between
// evaluations.
package hand

import (
	"errors"
	"fmt"

	"github.com/paulhankin/poker"

	"github.com/ryan-northplay/poker-client/internal/protocol"
)

var ErrTooFewCards = errors.New("need at least five cards to rank a hand")

// Hand is the best five-card hand extractable from a player's pocket and
// community cards. RankCards are the five cards making the rank, used to
// highlight relevant cards at the table.
type Hand struct {
	Description string
	Score       int16
	RankCards   protocol.Cards
}

// Contains reports whether the given card participates in the ranked hand.
func (h *Hand) Contains(c protocol.Card) bool {
	if h == nil {
		return false
	}
	for _, rc := range h.RankCards {
		if protocol.SameCard(rc, c) {
			return true
		}
	}
	return false
}

var faceRanks = map[protocol.Face]poker.Rank{
	protocol.FaceAce: 1, protocol.FaceTwo: 2, protocol.FaceThree: 3,
	protocol.FaceFour: 4, protocol.FaceFive: 5, protocol.FaceSix: 6,
	protocol.FaceSeven: 7, protocol.FaceEight: 8, protocol.FaceNine: 9,
	protocol.FaceTen: 10, protocol.FaceJack: 11, protocol.FaceQueen: 12,
	protocol.FaceKing: 13,
}

var suitSuits = map[protocol.Suit]poker.Suit{
	protocol.SuitClubs:    poker.Club,
	protocol.SuitDiamonds: poker.Diamond,
	protocol.SuitHearts:   poker.Heart,
	protocol.SuitSpades:   poker.Spade,
}

func convert(c protocol.Card) (poker.Card, error) {
	var zero poker.Card
	rank, ok := faceRanks[c.Face]
	if !ok {
		return zero, fmt.Errorf("invalid card face %q", c.Face)
	}
	suit, ok := suitSuits[c.Suit]
	if !ok {
		return zero, fmt.Errorf("invalid card suit %q", c.Suit)
	}
	return poker.MakeCard(suit, rank)
}

// Evaluate extracts the best five-card hand from pocketCards plus
// communityCards. It returns ErrTooFewCards before the flop, when fewer
// than five cards are visible.
func Evaluate(pocketCards, communityCards protocol.Cards) (*Hand, error) {
	all := make(protocol.Cards, 0, len(pocketCards)+len(communityCards))
	all = append(all, pocketCards...)
	all = append(all, communityCards...)
	if len(all) < 5 {
		return nil, ErrTooFewCards
	}

	converted := make([]poker.Card, len(all))
	for i, c := range all {
		pc, err := convert(c)
		if err != nil {
			return nil, err
		}
		converted[i] = pc
	}

	best, bestScore := bestFive(all, converted)

	var five [5]poker.Card
	for i, c := range best {
		five[i], _ = convert(c)
	}
	desc, err := poker.Describe(five[:])
	if err != nil {
		return nil, fmt.Errorf("describe hand: %w", err)
	}

	return &Hand{Description: desc, Score: bestScore, RankCards: best}, nil
}

// bestFive scans every five-card subset and keeps the highest-scoring one.
// At most 7 choose 5 = 21 subsets, so brute force is fine.
func bestFive(all protocol.Cards, converted []poker.Card) (protocol.Cards, int16) {
	n := len(all)
	var (
		best      protocol.Cards
		bestScore int16 = -1
	)
	idx := [5]int{}
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == 5 {
			var five [5]poker.Card
			for i, j := range idx {
				five[i] = converted[j]
			}
			if score := poker.Eval5(&five); score > bestScore {
				bestScore = score
				best = make(protocol.Cards, 5)
				for i, j := range idx {
					best[i] = all[j]
				}
			}
			return
		}
		for i := start; i <= n-(5-depth); i++ {
			idx[depth] = i
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)
	return best, bestScore
}
