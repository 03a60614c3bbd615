package session

import (
	"context"
	"errors"
)

var ErrTransportNotOpen = errors.New("transport is not open")

// Event is the tagged union of transport lifecycle events. The manager's
// run loop consumes these strictly sequentially, which is what gives
// snapshot replacement its ordering guarantee.
type Event interface{ isEvent() }

// Opened fires once when the transport handshake completes.
type Opened struct{}

// Frame is one inbound message. Text is false for binary frames, which
// the protocol does not use and the manager drops.
type Frame struct {
	Data []byte
	Text bool
}

// Closed fires when the transport shuts down cleanly, including a local
// Close.
type Closed struct{}

// Failed fires when the transport errors; no further events follow.
type Failed struct{ Err error }

func (Opened) isEvent() {}
func (Frame) isEvent()  {}
func (Closed) isEvent() {}
func (Failed) isEvent() {}

// Transport is one bidirectional connection instance. Events delivers
// lifecycle and message events in order and is closed when the transport
// is finished. Send transmits a single text frame.
type Transport interface {
	Events() <-chan Event
	Send(ctx context.Context, data []byte) error
	Close() error
}

// Dialer opens a transport. Dial failures surface as a Failed event on
// the returned transport rather than an error here, so the state machine
// sees a uniform connecting -> {connected | disconnected} path.
type Dialer func(ctx context.Context, url string) Transport
