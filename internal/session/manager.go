// Package session owns the persistent connection to the table server:
// the lifecycle state machine, the keepalive heartbeat, session
// resumption from the stored session path, and the outbound intent
// methods the UI calls.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/ryan-northplay/poker-client/internal/protocol"
	"github.com/ryan-northplay/poker-client/internal/state"
)

// Status is the connection lifecycle state. It only moves on transport
// events: Connect() sets connecting, an Opened event sets connected, and
// Closed/Failed set disconnected. There is no automatic reconnect.
type Status string

const (
	StatusConnecting   Status = "connecting"
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
)

// HeartbeatInterval is how often the keepalive token goes out while the
// connection is open.
const HeartbeatInterval = 20 * time.Second

var ErrSeatTokenResponse = errors.New("seat token response missing seatToken")

// Options configures a Manager. Zero-value fields fall back to
// production defaults; tests inject a fake Dialer and a short heartbeat.
type Options struct {
	WSURL      string
	HTTPURL    string
	Dial       Dialer
	HTTPClient *http.Client
	Heartbeat  time.Duration
	Logger     *slog.Logger
}

// Manager owns the single transport to the server. All inbound events
// for one transport are handled on one run-loop goroutine, so snapshot
// replacement for message n is visible before message n+1 is decoded.
type Manager struct {
	wsURL     string
	httpURL   string
	dial      Dialer
	httpc     *http.Client
	heartbeat time.Duration
	log       *slog.Logger
	store     *state.Store

	mu        sync.Mutex
	status    Status
	transport Transport
}

func NewManager(store *state.Store, opts Options) *Manager {
	if opts.Dial == nil {
		opts.Dial = DialWebSocket
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Heartbeat <= 0 {
		opts.Heartbeat = HeartbeatInterval
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Manager{
		wsURL:     opts.WSURL,
		httpURL:   opts.HTTPURL,
		dial:      opts.Dial,
		httpc:     opts.HTTPClient,
		heartbeat: opts.Heartbeat,
		log:       opts.Logger,
		store:     store,
	}
}

func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status == "" {
		return StatusDisconnected
	}
	return m.status
}

// Connect opens a fresh transport. Any prior transport is closed first,
// which tears down its run loop and with it the old heartbeat, so at
// most one heartbeat is ever active per manager.
func (m *Manager) Connect(ctx context.Context) {
	m.mu.Lock()
	if m.transport != nil {
		_ = m.transport.Close()
	}
	m.status = StatusConnecting
	t := m.dial(ctx, m.wsURL)
	m.transport = t
	m.mu.Unlock()

	go m.run(ctx, t)
}

// Close tears the session down. The resulting transport close event
// moves the status to disconnected.
func (m *Manager) Close() error {
	m.mu.Lock()
	t := m.transport
	m.mu.Unlock()
	if t == nil {
		return nil
	}
	return t.Close()
}

func (m *Manager) run(ctx context.Context, t Transport) {
	var ticker *time.Ticker
	var heartbeat <-chan time.Time
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		select {
		case ev, ok := <-t.Events():
			if !ok {
				return
			}
			switch e := ev.(type) {
			case Opened:
				if ticker != nil {
					ticker.Stop()
				}
				ticker = time.NewTicker(m.heartbeat)
				heartbeat = ticker.C
				m.onOpen(ctx, t)
			case Frame:
				m.onMessage(t, e)
			case Closed:
				m.onClose(t)
				return
			case Failed:
				m.onError(t, e.Err)
				return
			}
		case <-heartbeat:
			m.sendPing(ctx, t)
		}
	}
}

// isCurrent guards against events from a superseded transport mutating
// the state machine after a newer Connect.
func (m *Manager) isCurrent(t Transport) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transport == t
}

// onOpen marks the session connected and resumes it from the stored
// session path: "/{table}" requests a seat token first, while
// "/{table}/{token}" joins directly.
func (m *Manager) onOpen(ctx context.Context, t Transport) {
	if !m.isCurrent(t) {
		return
	}
	m.mu.Lock()
	m.status = StatusConnected
	m.mu.Unlock()

	tableName, seatToken := state.SplitSessionPath(m.store.Locator().Path())
	switch {
	case tableName != "" && seatToken == "":
		token, err := m.requestSeatToken(ctx, tableName)
		if err != nil {
			// No retry and no user-visible surfacing; the table screen
			// simply never appears. See requestSeatToken.
			m.log.Warn("seat token request failed", "table", tableName, "err", err)
			return
		}
		m.JoinTable(tableName, token)
	case tableName != "" && seatToken != "":
		m.JoinTable(tableName, seatToken)
	}
}

// onMessage decodes one inbound frame. Undecodable frames are dropped
// and logged; they never end the session.
func (m *Manager) onMessage(t Transport, f Frame) {
	if !m.isCurrent(t) {
		return
	}
	if !f.Text {
		m.log.Warn("dropping non-text frame", "bytes", len(f.Data))
		return
	}
	msg, err := protocol.Decode(f.Data)
	if err != nil {
		m.log.Warn("dropping undecodable frame", "err", err)
		return
	}
	switch msg.Type {
	case protocol.TypeTableState:
		m.store.Replace(msg.Table)
	}
}

func (m *Manager) onClose(t Transport) {
	if !m.isCurrent(t) {
		return
	}
	m.mu.Lock()
	m.status = StatusDisconnected
	m.mu.Unlock()
	m.log.Info("connection closed")
}

func (m *Manager) onError(t Transport, err error) {
	if !m.isCurrent(t) {
		return
	}
	m.mu.Lock()
	m.status = StatusDisconnected
	m.mu.Unlock()
	m.log.Warn("connection failed", "err", err)
}

func (m *Manager) sendPing(ctx context.Context, t Transport) {
	if !m.isCurrent(t) {
		return
	}
	if err := t.Send(ctx, []byte(protocol.PingFrame)); err != nil {
		m.log.Debug("heartbeat send failed", "err", err)
	}
}

// requestSeatToken performs the one-shot POST /join/{tableName}
// exchange. Failures are returned for logging but deliberately not
// retried or surfaced; a request already in flight when the transport
// drops may still complete and join a stale session, which is a known,
// accepted race.
func (m *Manager) requestSeatToken(ctx context.Context, tableName string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		m.httpURL+"/join/"+url.PathEscape(tableName), nil)
	if err != nil {
		return "", err
	}
	resp, err := m.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("join request returned %s", resp.Status)
	}
	var body struct {
		SeatToken string `json:"seatToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.SeatToken == "" {
		return "", ErrSeatTokenResponse
	}
	return body.SeatToken, nil
}

// send transmits an encoded intent, but only while connected. A send in
// any other state is dropped, never queued.
func (m *Manager) send(msg protocol.ClientMessage) {
	m.mu.Lock()
	t, st := m.transport, m.status
	m.mu.Unlock()
	if t == nil || st != StatusConnected {
		return
	}
	data, err := protocol.Encode(msg)
	if err != nil {
		m.log.Warn("dropping unencodable intent", "err", err)
		return
	}
	if err := t.Send(context.Background(), data); err != nil {
		m.log.Warn("intent send failed", "err", err)
	}
}
