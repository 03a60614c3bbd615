// Package tabletest is a scripted stand-in for the table server, used to
// exercise the client over a real HTTP and websocket wire. It answers
// the one-shot seat-token request, accepts one websocket client at a
// time, records every inbound frame, and pushes whatever table-state
// frames a test scripts.
package tabletest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"

	"github.com/ryan-northplay/poker-client/internal/protocol"
)

// Server wraps an httptest.Server with the two endpoints the client
// uses: POST /join/{tableName} and GET /ws.
type Server struct {
	HTTP *httptest.Server

	// SeatToken is what POST /join hands out.
	SeatToken string

	mu           sync.Mutex
	conn         *websocket.Conn
	joinRequests []string

	frames    chan []byte
	connected chan struct{}
}

func NewServer(seatToken string) *Server {
	s := &Server{
		SeatToken: seatToken,
		frames:    make(chan []byte, 32),
		connected: make(chan struct{}, 4),
	}

	r := chi.NewRouter()
	r.Post("/join/{tableName}", s.handleJoin)
	r.Get("/ws", s.handleWS)
	s.HTTP = httptest.NewServer(r)
	return s
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.joinRequests = append(s.joinRequests, chi.URLParam(r, "tableName"))
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		SeatToken string `json:"seatToken"`
	}{SeatToken: s.SeatToken})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	s.connected <- struct{}{}

	for {
		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		_, data, err := conn.Read(ctx)
		cancel()
		if err != nil {
			return
		}
		s.frames <- data
	}
}

// WSURL is the websocket address of the /ws endpoint.
func (s *Server) WSURL() string {
	return "ws" + strings.TrimPrefix(s.HTTP.URL, "http") + "/ws"
}

// JoinRequests returns the table names POSTed to /join so far.
func (s *Server) JoinRequests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.joinRequests...)
}

// Frames exposes inbound client frames in arrival order.
func (s *Server) Frames() <-chan []byte { return s.frames }

// Connected signals each websocket client accept.
func (s *Server) Connected() <-chan struct{} { return s.connected }

// Push sends a server/table-state frame carrying the given table (nil
// means "no table").
func (s *Server) Push(table *protocol.Table) error {
	data, err := json.Marshal(protocol.ServerMessage{Type: protocol.TypeTableState, Table: table})
	if err != nil {
		return err
	}
	return s.PushRaw(data)
}

// PushRaw sends an arbitrary text frame, valid or not.
func (s *Server) PushRaw(data []byte) error {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return ErrNoClient
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, data)
}

// CloseClient drops the current websocket client, simulating a server-
// side disconnect.
func (s *Server) CloseClient() {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.mu.Unlock()
	if conn != nil {
		_ = conn.Close(websocket.StatusGoingAway, "bye")
	}
}

// Close shuts the whole fixture down.
func (s *Server) Close() {
	s.CloseClient()
	s.HTTP.Close()
}
