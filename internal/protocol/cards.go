package protocol

import (
	"encoding/json"
	"fmt"
)

// Face is a card face value as it appears on the wire.
type Face string

const (
	FaceTwo   Face = "2"
	FaceThree Face = "3"
	FaceFour  Face = "4"
	FaceFive  Face = "5"
	FaceSix   Face = "6"
	FaceSeven Face = "7"
	FaceEight Face = "8"
	FaceNine  Face = "9"
	FaceTen   Face = "10"
	FaceJack  Face = "j"
	FaceQueen Face = "q"
	FaceKing  Face = "k"
	FaceAce   Face = "a"
)

// Suit is a card suit as it appears on the wire.
type Suit string

const (
	SuitClubs    Suit = "c"
	SuitDiamonds Suit = "d"
	SuitHearts   Suit = "h"
	SuitSpades   Suit = "s"
)

// Card travels as a two-element JSON array [face, suit].
type Card struct {
	Face Face
	Suit Suit
}

type Cards []Card

var validFaces = map[Face]bool{
	FaceTwo: true, FaceThree: true, FaceFour: true, FaceFive: true,
	FaceSix: true, FaceSeven: true, FaceEight: true, FaceNine: true,
	FaceTen: true, FaceJack: true, FaceQueen: true, FaceKing: true, FaceAce: true,
}

var validSuits = map[Suit]bool{
	SuitClubs: true, SuitDiamonds: true, SuitHearts: true, SuitSpades: true,
}

func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{string(c.Face), string(c.Suit)})
}

func (c *Card) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("card must be a [face, suit] pair: %w", err)
	}
	face, suit := Face(pair[0]), Suit(pair[1])
	if !validFaces[face] {
		return fmt.Errorf("unknown card face %q", pair[0])
	}
	if !validSuits[suit] {
		return fmt.Errorf("unknown card suit %q", pair[1])
	}
	c.Face = face
	c.Suit = suit
	return nil
}

// SameCard reports whether two cards are the same physical card.
func SameCard(a, b Card) bool {
	return a.Face == b.Face && a.Suit == b.Suit
}

func (c Card) String() string {
	return string(c.Face) + string(c.Suit)
}
