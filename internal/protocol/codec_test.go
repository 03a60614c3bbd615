package protocol

import (
	"encoding/json"
	"errors"
	"testing"
)

func mustEncode(t *testing.T, msg ClientMessage) map[string]any {
	t.Helper()
	data, err := Encode(msg)
	if err != nil {
		t.Fatalf("Encode(%T) failed: %v", msg, err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Encode(%T) produced invalid JSON: %v", msg, err)
	}
	return fields
}

func TestEncode_TypeUniquePerVariant(t *testing.T) {
	intents := []ClientMessage{
		JoinTable{TableName: "t", SeatToken: "s"},
		CreateTable{TableName: "t", NumberOfSeats: 5, StartingChipCount: 100, SmallBlind: 1},
		StartGame{TableName: "t", SeatToken: "s"},
		ChangeDisplayName{TableName: "t", SeatToken: "s"},
		Deal{TableName: "t", SeatToken: "s"},
		PlaceBet{TableName: "t", SeatToken: "s", ChipCount: 10},
		Call{TableName: "t", SeatToken: "s"},
		Check{TableName: "t", SeatToken: "s"},
		Fold{TableName: "t", SeatToken: "s"},
	}

	seen := make(map[string]bool)
	for _, intent := range intents {
		fields := mustEncode(t, intent)
		typ, ok := fields["type"].(string)
		if !ok || typ == "" {
			t.Fatalf("%T encoded without a type field: %v", intent, fields)
		}
		if seen[typ] {
			t.Fatalf("type %q used by more than one variant", typ)
		}
		seen[typ] = true
	}
	if len(seen) != len(intents) {
		t.Fatalf("expected %d distinct types, got %d", len(intents), len(seen))
	}
}

func TestEncode_VariantFields(t *testing.T) {
	fields := mustEncode(t, PlaceBet{TableName: "MyTable", SeatToken: "tok", ChipCount: 25})
	if fields["type"] != string(TypePlaceBet) {
		t.Fatalf("wrong type: %v", fields["type"])
	}
	if fields["tableName"] != "MyTable" || fields["seatToken"] != "tok" {
		t.Fatalf("identity fields missing: %v", fields)
	}
	if fields["chipCount"] != float64(25) {
		t.Fatalf("chipCount missing or wrong: %v", fields["chipCount"])
	}

	fields = mustEncode(t, CreateTable{
		TableName:              "NewTable",
		NumberOfSeats:          6,
		StartingChipCount:      200,
		SmallBlind:             2,
		HighlightRelevantCards: true,
	})
	for _, key := range []string{"tableName", "numberOfSeats", "startingChipCount", "smallBlind", "highlightRelevantCards"} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("create-table frame missing %q: %v", key, fields)
		}
	}
}

func TestEncode_RejectsIncompleteIntents(t *testing.T) {
	cases := []struct {
		name string
		msg  ClientMessage
		want error
	}{
		{"join without token", JoinTable{TableName: "t"}, ErrMissingField},
		{"join without table", JoinTable{SeatToken: "s"}, ErrMissingField},
		{"create without name", CreateTable{NumberOfSeats: 5}, ErrMissingField},
		{"fold without identity", Fold{}, ErrMissingField},
		{"deal without token", Deal{TableName: "t"}, ErrMissingField},
		{"bet of zero", PlaceBet{TableName: "t", SeatToken: "s"}, ErrInvalidChipCount},
		{"negative bet", PlaceBet{TableName: "t", SeatToken: "s", ChipCount: -5}, ErrInvalidChipCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Encode(tc.msg); !errors.Is(err, tc.want) {
				t.Fatalf("Encode(%+v) = %v, want %v", tc.msg, err, tc.want)
			}
		})
	}
}

func TestDecode_RejectsGarbage(t *testing.T) {
	cases := []struct {
		name  string
		frame string
		want  error
	}{
		{"not json", "PONG", ErrMalformedFrame},
		{"json number", "42", ErrMalformedFrame},
		{"no type field", `{"table":{}}`, ErrMissingType},
		{"empty type", `{"type":""}`, ErrMissingType},
		{"non-string type", `{"type":123}`, ErrMalformedFrame},
		{"unknown type", `{"type":"server/so-new"}`, ErrUnknownType},
		{"client type inbound", `{"type":"client/fold"}`, ErrUnknownType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode([]byte(tc.frame)); !errors.Is(err, tc.want) {
				t.Fatalf("Decode(%q) = %v, want %v", tc.frame, err, tc.want)
			}
		})
	}
}

func TestDecode_TableState(t *testing.T) {
	frame := `{
		"type": "server/table-state",
		"table": {
			"name": "MyTable",
			"isStarted": true,
			"bettingRound": "flop",
			"currentUser": {"seatToken": "tok1"},
			"communityCards": [["a","s"],["10","h"],["2","c"]],
			"activePot": {"chipCount": 30, "players": ["ann","bob"]},
			"splitPots": [],
			"seats": [
				{"token":"tok1","displayName":"ann","chipCount":90,"chipsBetCount":10,
				 "isDealer":true,"isTurnToBet":true,"pocketCards":[["k","s"],["k","h"]]},
				{"isEmpty":true}
			]
		}
	}`

	msg, err := Decode([]byte(frame))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if msg.Type != TypeTableState {
		t.Fatalf("wrong type: %q", msg.Type)
	}
	table := msg.Table
	if table == nil {
		t.Fatal("expected a table")
	}
	if table.Name != "MyTable" || !table.IsStarted || table.BettingRound != RoundFlop {
		t.Fatalf("table fields wrong: %+v", table)
	}
	if table.CurrentUser.SeatToken != "tok1" {
		t.Fatalf("currentUser wrong: %+v", table.CurrentUser)
	}
	if len(table.CommunityCards) != 3 || table.CommunityCards[0] != (Card{Face: FaceAce, Suit: SuitSpades}) {
		t.Fatalf("community cards wrong: %+v", table.CommunityCards)
	}
	seat := table.Seats[0]
	if seat.Token != "tok1" || !seat.IsDealer || !seat.IsTurnToBet || len(seat.PocketCards) != 2 {
		t.Fatalf("seat wrong: %+v", seat)
	}
	if !table.Seats[1].IsEmpty {
		t.Fatal("second seat should be empty")
	}
	if !table.HasEmptySeat() {
		t.Fatal("HasEmptySeat should be true")
	}
	if got, ok := table.CurrentSeat(); !ok || got.Token != "tok1" {
		t.Fatalf("CurrentSeat wrong: %+v ok=%v", got, ok)
	}
}

func TestDecode_TableStateWithoutTable(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"server/table-state"}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if msg.Table != nil {
		t.Fatalf("expected no table, got %+v", msg.Table)
	}
}

func TestDecode_RejectsBadCards(t *testing.T) {
	frame := `{"type":"server/table-state","table":{"name":"t","communityCards":[["1","x"]]}}`
	if _, err := Decode([]byte(frame)); !errors.Is(err, ErrMalformedFrame) {
		t.Fatalf("expected malformed frame error, got %v", err)
	}
}
