/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package conn

import "context"

// State is one of the five connection states.
type State uint8

const (
	StateIdle State = iota
	StateConnecting
	StateWaitWelcome
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateWaitWelcome:
		return "wait-welcome"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Conn is the facade package dispatch drives: it reports readiness changes,
// hands decoded verb packets upstream, and accepts verbs to encode and
// send once the link is ready. It mirrors
// original_source/nervix/protocols/base.py's BaseConnection contract
// (set_ready_handler/set_downstream_handler/send_verb).
type Conn interface {
	// Start begins the connect/reconnect cycle on the loop goroutine.
	Start(ctx context.Context)

	// Stop disables auto-reconnect and tears down any live attempt. The
	// Conn can be restarted with another Start call.
	Stop()

	// AddReadyHandler registers fn to be called once immediately with the
	// current readiness, then again every time a transition crosses the
	// ready boundary. Returns an id usable with RemoveReadyHandler.
	AddReadyHandler(fn func(ready bool)) uint64

	// RemoveReadyHandler unregisters a handler added by AddReadyHandler.
	RemoveReadyHandler(id uint64) bool

	// SetDownstreamHandler installs the callback invoked with every
	// decoded verb packet that isn't one of the connection-level control
	// packets (Ping/Pong/Welcome/ByeBye/Quit), which conn handles itself.
	// Call before Start; not safe to change concurrently with traffic.
	SetDownstreamHandler(fn func(pkt interface{}))

	// SendVerb encodes and queues v for immediate transmission. It fails
	// if the connection isn't currently Ready; callers needing at-least-
	// once delivery across reconnects keep their own backlog.
	SendVerb(v interface{}) error

	// State returns the current connection state.
	State() State

	// Ready reports whether State() == StateReady.
	Ready() bool
}
