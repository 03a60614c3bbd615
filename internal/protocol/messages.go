package protocol

// MessageType is the wire discriminator carried in every JSON frame.
type MessageType string

const (
	TypeJoinTable         MessageType = "client/join-table"
	TypeCreateTable       MessageType = "client/create-table"
	TypeStartGame         MessageType = "client/start-game"
	TypeChangeDisplayName MessageType = "client/change-display-name"
	TypeDeal              MessageType = "client/deal"
	TypePlaceBet          MessageType = "client/place-bet"
	TypeCall              MessageType = "client/call"
	TypeCheck             MessageType = "client/check"
	TypeFold              MessageType = "client/fold"

	TypeTableState MessageType = "server/table-state"
)

// PingFrame is the keepalive token sent on the heartbeat. It is a bare
// text frame, not JSON, and the server parses no reply to it.
const PingFrame = "PING"

// ClientMessage is the tagged union of outbound intents.
type ClientMessage interface{ isClientMessage() }

type JoinTable struct {
	Type      MessageType `json:"type"`
	TableName string      `json:"tableName"`
	SeatToken string      `json:"seatToken"`
}

type CreateTable struct {
	Type                   MessageType `json:"type"`
	TableName              string      `json:"tableName"`
	NumberOfSeats          int         `json:"numberOfSeats"`
	StartingChipCount      int         `json:"startingChipCount"`
	SmallBlind             int         `json:"smallBlind"`
	HighlightRelevantCards bool        `json:"highlightRelevantCards"`
}

type StartGame struct {
	Type      MessageType `json:"type"`
	TableName string      `json:"tableName"`
	SeatToken string      `json:"seatToken"`
}

type ChangeDisplayName struct {
	Type      MessageType `json:"type"`
	TableName string      `json:"tableName"`
	SeatToken string      `json:"seatToken"`
}

type Deal struct {
	Type      MessageType `json:"type"`
	TableName string      `json:"tableName"`
	SeatToken string      `json:"seatToken"`
}

type PlaceBet struct {
	Type      MessageType `json:"type"`
	TableName string      `json:"tableName"`
	SeatToken string      `json:"seatToken"`
	ChipCount int         `json:"chipCount"`
}

type Call struct {
	Type      MessageType `json:"type"`
	TableName string      `json:"tableName"`
	SeatToken string      `json:"seatToken"`
}

type Check struct {
	Type      MessageType `json:"type"`
	TableName string      `json:"tableName"`
	SeatToken string      `json:"seatToken"`
}

type Fold struct {
	Type      MessageType `json:"type"`
	TableName string      `json:"tableName"`
	SeatToken string      `json:"seatToken"`
}

func (JoinTable) isClientMessage()         {}
func (CreateTable) isClientMessage()       {}
func (StartGame) isClientMessage()         {}
func (ChangeDisplayName) isClientMessage() {}
func (Deal) isClientMessage()              {}
func (PlaceBet) isClientMessage()          {}
func (Call) isClientMessage()              {}
func (Check) isClientMessage()             {}
func (Fold) isClientMessage()              {}

// ServerMessage is an inbound frame after validation. Table is nil when
// the server reports no table for this session (not yet joined, or the
// table was closed).
type ServerMessage struct {
	Type  MessageType `json:"type"`
	Table *Table      `json:"table,omitempty"`
}
