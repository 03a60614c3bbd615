// Package state owns the latest table snapshot and the session path it
// implies. The snapshot is only ever replaced whole; no field-level
// patching happens on the client.
package state

import (
	"log/slog"
	"sync"

	"github.com/ryan-northplay/poker-client/internal/protocol"
)

// Store is the single source of truth for the latest table snapshot.
// Replace is the only mutator. Subscribers get every replacement on a
// buffered channel; a subscriber that falls behind misses intermediate
// snapshots but always sees the latest on its next read.
type Store struct {
	mu      sync.RWMutex
	table   *protocol.Table
	locator Locator
	log     *slog.Logger

	subs   map[int]chan *protocol.Table
	nextID int
}

func NewStore(locator Locator, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		locator: locator,
		log:     log,
		subs:    make(map[int]chan *protocol.Table),
	}
}

func (s *Store) Locator() Locator { return s.locator }

// Table returns the latest snapshot, nil when no table is known.
func (s *Store) Table() *protocol.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

// SessionIdentity returns (tableName, seatToken) from the latest
// snapshot. ok is false until a snapshot with both values has arrived.
func (s *Store) SessionIdentity() (tableName, seatToken string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.table == nil {
		return "", "", false
	}
	tableName = s.table.Name
	seatToken = s.table.CurrentUser.SeatToken
	return tableName, seatToken, tableName != "" && seatToken != ""
}

// Replace atomically swaps the stored snapshot and publishes it. When a
// table is present and the session path is still "/" or "/{tableName}",
// the path is rewritten to "/{tableName}/{seatToken}" before any
// subscriber can observe the new snapshot, so a restart never races the
// rewrite.
func (s *Store) Replace(table *protocol.Table) {
	s.mu.Lock()
	s.table = table
	if table != nil {
		p := s.locator.Path()
		if p == "/" || p == "/"+table.Name {
			s.locator.Rewrite(SessionPath(table.Name, table.CurrentUser.SeatToken))
		}
	}
	subs := make([]chan *protocol.Table, 0, len(s.subs))
	for _, ch := range s.subs {
		subs = append(subs, ch)
	}
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- table:
		default:
			// Subscriber is behind. It will catch up from Table().
			s.log.Debug("subscriber lagging, snapshot not queued")
		}
	}
}

// Subscribe registers for snapshot replacements. The cancel func must be
// called when the consumer goes away.
func (s *Store) Subscribe() (<-chan *protocol.Table, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	ch := make(chan *protocol.Table, 8)
	s.subs[id] = ch
	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
