package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrMalformedFrame   = errors.New("malformed frame")
	ErrMissingType      = errors.New("frame has no type field")
	ErrUnknownType      = errors.New("unknown message type")
	ErrMissingField     = errors.New("intent is missing a required field")
	ErrInvalidChipCount = errors.New("chip count must be positive")
)

// Encode serializes an outbound intent to a single JSON text frame. The
// type discriminator is stamped here so no caller can mislabel a variant.
func Encode(msg ClientMessage) ([]byte, error) {
	switch m := msg.(type) {
	case JoinTable:
		if m.TableName == "" || m.SeatToken == "" {
			return nil, fmt.Errorf("%w: join-table needs tableName and seatToken", ErrMissingField)
		}
		m.Type = TypeJoinTable
		return json.Marshal(m)
	case CreateTable:
		if m.TableName == "" {
			return nil, fmt.Errorf("%w: create-table needs tableName", ErrMissingField)
		}
		m.Type = TypeCreateTable
		return json.Marshal(m)
	case StartGame:
		if err := requireIdentity(m.TableName, m.SeatToken); err != nil {
			return nil, err
		}
		m.Type = TypeStartGame
		return json.Marshal(m)
	case ChangeDisplayName:
		if err := requireIdentity(m.TableName, m.SeatToken); err != nil {
			return nil, err
		}
		m.Type = TypeChangeDisplayName
		return json.Marshal(m)
	case Deal:
		if err := requireIdentity(m.TableName, m.SeatToken); err != nil {
			return nil, err
		}
		m.Type = TypeDeal
		return json.Marshal(m)
	case PlaceBet:
		if err := requireIdentity(m.TableName, m.SeatToken); err != nil {
			return nil, err
		}
		if m.ChipCount <= 0 {
			return nil, ErrInvalidChipCount
		}
		m.Type = TypePlaceBet
		return json.Marshal(m)
	case Call:
		if err := requireIdentity(m.TableName, m.SeatToken); err != nil {
			return nil, err
		}
		m.Type = TypeCall
		return json.Marshal(m)
	case Check:
		if err := requireIdentity(m.TableName, m.SeatToken); err != nil {
			return nil, err
		}
		m.Type = TypeCheck
		return json.Marshal(m)
	case Fold:
		if err := requireIdentity(m.TableName, m.SeatToken); err != nil {
			return nil, err
		}
		m.Type = TypeFold
		return json.Marshal(m)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownType, msg)
	}
}

func requireIdentity(tableName, seatToken string) error {
	if tableName == "" || seatToken == "" {
		return fmt.Errorf("%w: intent needs tableName and seatToken", ErrMissingField)
	}
	return nil
}

// Decode parses and validates one inbound text frame. It never panics on
// garbage input; callers branch on the returned error and drop the frame.
func Decode(data []byte) (ServerMessage, error) {
	var probe struct {
		Type *MessageType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return ServerMessage{}, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	if probe.Type == nil || *probe.Type == "" {
		return ServerMessage{}, ErrMissingType
	}
	if *probe.Type != TypeTableState {
		return ServerMessage{}, fmt.Errorf("%w: %q", ErrUnknownType, *probe.Type)
	}

	var msg ServerMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ServerMessage{}, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	return msg, nil
}
