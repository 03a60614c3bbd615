package session

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const writeTimeout = 3 * time.Second

// wsTransport adapts a coder/websocket connection to the Transport
// interface: a reader goroutine turns the connection's lifecycle into
// the Event stream the manager consumes.
type wsTransport struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool

	events chan Event
}

// DialWebSocket is the production Dialer. The handshake runs in the
// background; Opened arrives on the event channel once it completes.
func DialWebSocket(ctx context.Context, url string) Transport {
	t := &wsTransport{events: make(chan Event, 16)}
	go t.start(ctx, url)
	return t
}

func (t *wsTransport) start(ctx context.Context, url string) {
	defer close(t.events)

	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.events <- Failed{Err: err}
		return
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		_ = conn.Close(websocket.StatusNormalClosure, "superseded")
		t.events <- Closed{}
		return
	}
	t.conn = conn
	t.mu.Unlock()

	t.events <- Opened{}

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				t.events <- Closed{}
			default:
				if t.isClosed() || ctx.Err() != nil {
					t.events <- Closed{}
				} else {
					t.events <- Failed{Err: err}
				}
			}
			return
		}
		t.events <- Frame{Data: data, Text: typ == websocket.MessageText}
	}
}

func (t *wsTransport) Events() <-chan Event { return t.events }

func (t *wsTransport) Send(ctx context.Context, data []byte) error {
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()
	if conn == nil {
		return ErrTransportNotOpen
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, data)
}

func (t *wsTransport) Close() error {
	t.mu.Lock()
	t.closed = true
	conn := t.conn
	t.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close(websocket.StatusNormalClosure, "bye")
}

func (t *wsTransport) isClosed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}
