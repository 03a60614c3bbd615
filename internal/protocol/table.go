package protocol

// BettingRound gates which actions are legal at the table.
type BettingRound string

const (
	RoundPreDeal  BettingRound = "pre-deal"
	RoundPreFlop  BettingRound = "pre-flop"
	RoundFlop     BettingRound = "flop"
	RoundTurn     BettingRound = "turn"
	RoundRiver    BettingRound = "river"
	RoundShowdown BettingRound = "showdown"
)

// Pot is a chip pool and the display names of the players eligible for it.
type Pot struct {
	ChipCount int      `json:"chipCount"`
	Players   []string `json:"players"`
}

// CurrentUser identifies the seat the server addressed this snapshot to.
type CurrentUser struct {
	SeatToken string `json:"seatToken"`
}

// Seat is one fixed slot at the table. An empty slot has IsEmpty set and
// zero values everywhere else. PocketCards is only populated for the seat
// matching the current user's token, or once revealed at showdown.
type Seat struct {
	Token         string `json:"token"`
	IsEmpty       bool   `json:"isEmpty"`
	DisplayName   string `json:"displayName"`
	ChipCount     int    `json:"chipCount"`
	ChipsBetCount int    `json:"chipsBetCount"`
	IsDealer      bool   `json:"isDealer"`
	IsTurnToBet   bool   `json:"isTurnToBet"`
	IsFolded      bool   `json:"isFolded"`
	IsBust        bool   `json:"isBust"`
	PocketCards   Cards  `json:"pocketCards,omitempty"`
}

// Table is the authoritative server-pushed view of table state. Each
// inbound snapshot fully replaces the prior one; fields are never patched
// individually on the client.
type Table struct {
	Name                   string       `json:"name"`
	Seats                  []Seat       `json:"seats"`
	CommunityCards         Cards        `json:"communityCards"`
	ActivePot              Pot          `json:"activePot"`
	SplitPots              []Pot        `json:"splitPots"`
	BettingRound           BettingRound `json:"bettingRound"`
	CurrentUser            CurrentUser  `json:"currentUser"`
	IsStarted              bool         `json:"isStarted"`
	MaxBetChipCount        int          `json:"maxBetChipCount"`
	SmallBlind             int          `json:"smallBlind"`
	HighlightRelevantCards bool         `json:"highlightRelevantCards"`
}

// CurrentSeat returns the seat matching the current user's token.
func (t *Table) CurrentSeat() (Seat, bool) {
	for _, s := range t.Seats {
		if !s.IsEmpty && s.Token == t.CurrentUser.SeatToken {
			return s, true
		}
	}
	return Seat{}, false
}

// HasEmptySeat reports whether any slot at the table is unoccupied.
func (t *Table) HasEmptySeat() bool {
	for _, s := range t.Seats {
		if s.IsEmpty {
			return true
		}
	}
	return false
}
