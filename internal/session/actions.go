package session

import "github.com/ryan-northplay/poker-client/internal/protocol"

// CreateTableOptions is the table configuration the create screen
// collects.
type CreateTableOptions struct {
	TableName              string
	NumberOfSeats          int
	StartingChipCount      int
	SmallBlind             int
	HighlightRelevantCards bool
}

// The action methods below are the UI's entire write surface. Those that
// act on an existing table read the session identity from the latest
// snapshot and silently no-op until one with both values has arrived.

func (m *Manager) JoinTable(tableName, seatToken string) {
	m.send(protocol.JoinTable{TableName: tableName, SeatToken: seatToken})
}

func (m *Manager) CreateTable(o CreateTableOptions) {
	m.send(protocol.CreateTable{
		TableName:              o.TableName,
		NumberOfSeats:          o.NumberOfSeats,
		StartingChipCount:      o.StartingChipCount,
		SmallBlind:             o.SmallBlind,
		HighlightRelevantCards: o.HighlightRelevantCards,
	})
}

func (m *Manager) StartGame() {
	tableName, seatToken, ok := m.store.SessionIdentity()
	if !ok {
		return
	}
	m.send(protocol.StartGame{TableName: tableName, SeatToken: seatToken})
}

func (m *Manager) ChangeDisplayName() {
	tableName, seatToken, ok := m.store.SessionIdentity()
	if !ok {
		return
	}
	m.send(protocol.ChangeDisplayName{TableName: tableName, SeatToken: seatToken})
}

func (m *Manager) Deal() {
	tableName, seatToken, ok := m.store.SessionIdentity()
	if !ok {
		return
	}
	m.send(protocol.Deal{TableName: tableName, SeatToken: seatToken})
}

func (m *Manager) PlaceBet(chipCount int) {
	tableName, seatToken, ok := m.store.SessionIdentity()
	if !ok || chipCount <= 0 {
		return
	}
	m.send(protocol.PlaceBet{TableName: tableName, SeatToken: seatToken, ChipCount: chipCount})
}

func (m *Manager) Call() {
	tableName, seatToken, ok := m.store.SessionIdentity()
	if !ok {
		return
	}
	m.send(protocol.Call{TableName: tableName, SeatToken: seatToken})
}

func (m *Manager) Check() {
	tableName, seatToken, ok := m.store.SessionIdentity()
	if !ok {
		return
	}
	m.send(protocol.Check{TableName: tableName, SeatToken: seatToken})
}

func (m *Manager) Fold() {
	tableName, seatToken, ok := m.store.SessionIdentity()
	if !ok {
		return
	}
	m.send(protocol.Fold{TableName: tableName, SeatToken: seatToken})
}
