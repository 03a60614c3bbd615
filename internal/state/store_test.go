package state

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ryan-northplay/poker-client/internal/protocol"
)

func recvSnapshot(t *testing.T, ch <-chan *protocol.Table, within time.Duration) *protocol.Table {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(within):
		t.Fatalf("timed out waiting for snapshot")
		return nil
	}
}

func tableNamed(name, seatToken string) *protocol.Table {
	return &protocol.Table{
		Name:        name,
		CurrentUser: protocol.CurrentUser{SeatToken: seatToken},
		Seats:       []protocol.Seat{{Token: seatToken, DisplayName: "ann"}},
	}
}

func TestReplace_SwapsWholeSnapshot(t *testing.T) {
	s := NewStore(NewMemoryLocator("/"), nil)

	a := tableNamed("TableA", "tok1")
	a.ActivePot = protocol.Pot{ChipCount: 50}
	b := tableNamed("TableA", "tok1")

	s.Replace(a)
	s.Replace(b)

	got := s.Table()
	if got != b {
		t.Fatalf("Table() = %p, want the second snapshot %p", got, b)
	}
	if got.ActivePot.ChipCount != 0 {
		t.Fatalf("fields from the first snapshot leaked: %+v", got.ActivePot)
	}
}

func TestReplace_NilClearsTable(t *testing.T) {
	s := NewStore(NewMemoryLocator("/"), nil)
	s.Replace(tableNamed("T", "tok"))
	s.Replace(nil)
	if s.Table() != nil {
		t.Fatal("expected no table after replacing with nil")
	}
}

func TestReplace_RewritesBarePath(t *testing.T) {
	loc := NewMemoryLocator("/")
	s := NewStore(loc, nil)
	s.Replace(tableNamed("MyTable", "tok123"))
	if got := loc.Path(); got != "/MyTable/tok123" {
		t.Fatalf("path = %q, want /MyTable/tok123", got)
	}
}

func TestReplace_RewritesTableOnlyPath(t *testing.T) {
	loc := NewMemoryLocator("/MyTable")
	s := NewStore(loc, nil)
	s.Replace(tableNamed("MyTable", "tok123"))
	if got := loc.Path(); got != "/MyTable/tok123" {
		t.Fatalf("path = %q, want /MyTable/tok123", got)
	}
}

func TestReplace_LeavesFullPathAlone(t *testing.T) {
	loc := NewMemoryLocator("/MyTable/existing")
	s := NewStore(loc, nil)
	s.Replace(tableNamed("MyTable", "other"))
	if got := loc.Path(); got != "/MyTable/existing" {
		t.Fatalf("path = %q, want untouched /MyTable/existing", got)
	}
}

func TestReplace_RewriteVisibleBeforeNotify(t *testing.T) {
	loc := NewMemoryLocator("/")
	s := NewStore(loc, nil)
	ch, cancel := s.Subscribe()
	defer cancel()

	s.Replace(tableNamed("MyTable", "tok123"))

	recvSnapshot(t, ch, time.Second)
	if got := loc.Path(); got != "/MyTable/tok123" {
		t.Fatalf("subscriber saw snapshot before path rewrite: %q", got)
	}
}

func TestSubscribe_Cancel(t *testing.T) {
	s := NewStore(NewMemoryLocator("/"), nil)
	ch, cancel := s.Subscribe()
	cancel()
	s.Replace(tableNamed("T", "tok"))
	select {
	case snap := <-ch:
		t.Fatalf("canceled subscriber got a snapshot: %+v", snap)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSessionIdentity(t *testing.T) {
	s := NewStore(NewMemoryLocator("/"), nil)
	if _, _, ok := s.SessionIdentity(); ok {
		t.Fatal("identity should be absent without a snapshot")
	}
	s.Replace(tableNamed("MyTable", "tok123"))
	name, token, ok := s.SessionIdentity()
	if !ok || name != "MyTable" || token != "tok123" {
		t.Fatalf("identity = (%q, %q, %v)", name, token, ok)
	}
}

func TestFileLocator_RoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "session")

	l := NewFileLocator(file)
	if got := l.Path(); got != "/" {
		t.Fatalf("fresh locator path = %q, want /", got)
	}

	l.Rewrite("/MyTable/tok123")

	reloaded := NewFileLocator(file)
	if got := reloaded.Path(); got != "/MyTable/tok123" {
		t.Fatalf("reloaded path = %q, want /MyTable/tok123", got)
	}
}

func TestSplitSessionPath(t *testing.T) {
	cases := []struct {
		path        string
		table, seat string
	}{
		{"/", "", ""},
		{"/MyTable", "MyTable", ""},
		{"/MyTable/tok123", "MyTable", "tok123"},
		{"", "", ""},
	}
	for _, tc := range cases {
		table, seat := SplitSessionPath(tc.path)
		if table != tc.table || seat != tc.seat {
			t.Fatalf("SplitSessionPath(%q) = (%q, %q), want (%q, %q)",
				tc.path, table, seat, tc.table, tc.seat)
		}
	}
}
