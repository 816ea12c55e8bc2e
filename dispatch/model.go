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

package dispatch

import (
	"time"

	"github.com/nabbar/nxtcp/clock"
	"github.com/nabbar/nxtcp/conn"
	"github.com/nabbar/nxtcp/logger"
	"github.com/nabbar/nxtcp/serializer"
	"github.com/nabbar/nxtcp/verb"
)

type backlogEntry struct {
	verb     verb.Verb
	deadline time.Time // zero value means "no deadline"
}

// Core is the verb dispatcher: outgoing backlog, auto-resend set,
// messageref allocator and the call/interest/connection-lost handler registries,
// grounded on channel.py's Core.
type Core struct {
	cn  conn.Conn
	ser serializer.Serializer
	clk clock.Clock
	log logger.Logger

	ready bool

	autoResend []verb.Verb
	backlog    []backlogEntry

	nextMessageRef  uint64
	messageHandlers map[uint64]func(*verb.Message)

	callHandlers     map[string]func(*verb.Call)
	interestHandlers map[string]func(*verb.Interest)

	nextLostID             uint64
	connectionLostHandlers map[uint64]func()

	verbsSent     uint64
	verbsReceived uint64
}

// Stats is a point-in-time snapshot of Core's internal counters, read by
// package metrics to populate its prometheus gauges and counters.
type Stats struct {
	Ready          bool
	BacklogLen     int
	AutoResendLen  int
	NextMessageRef uint64
	VerbsSent      uint64
	VerbsReceived  uint64
}

// Stats returns a snapshot of Core's current state.
func (c *Core) Stats() Stats {
	return Stats{
		Ready:          c.ready,
		BacklogLen:     len(c.backlog),
		AutoResendLen:  len(c.autoResend),
		NextMessageRef: c.nextMessageRef,
		VerbsSent:      c.verbsSent,
		VerbsReceived:  c.verbsReceived,
	}
}

// New wires a Core onto cn's ready and downstream callbacks. ser encodes
// and decodes verb payloads for the high-level handles in package session.
func New(cn conn.Conn, ser serializer.Serializer, clk clock.Clock, log logger.Logger) *Core {
	c := &Core{
		cn:                     cn,
		ser:                    ser,
		clk:                    clk,
		log:                    log,
		nextMessageRef:         1,
		messageHandlers:        make(map[uint64]func(*verb.Message)),
		callHandlers:           make(map[string]func(*verb.Call)),
		interestHandlers:       make(map[string]func(*verb.Interest)),
		connectionLostHandlers: make(map[uint64]func()),
	}

	cn.AddReadyHandler(c.onConnectionReady)
	cn.SetDownstreamHandler(c.onIncomingVerb)

	return c
}

// EncodePayload turns an application value into wire bytes via the
// configured Serializer.
func (c *Core) EncodePayload(obj interface{}) ([]byte, error) {
	return c.ser.Encode(obj)
}

// DecodePayload turns wire bytes back into an application value via the
// configured Serializer.
func (c *Core) DecodePayload(raw []byte) (interface{}, error) {
	return c.ser.Decode(raw)
}

// PutUpstream validates v and either hands it to the connection
// immediately (if ready), queues it in the TTL-bound backlog, or drops it
// silently, per spec.md's put_upstream contract. When autoResend is set,
// v is also appended to the auto-resend list so it is replayed on every
// future ready transition.
func (c *Core) PutUpstream(v verb.Verb, ttl time.Duration, autoResend bool) error {
	if err := v.Validate(); err != nil {
		return err
	}

	if autoResend {
		c.autoResend = append(c.autoResend, v)
	}

	if c.ready {
		err := c.cn.SendVerb(v)
		if err == nil {
			c.verbsSent++
		}
		return err
	}

	if ttl > 0 {
		c.backlog = append(c.backlog, backlogEntry{verb: v, deadline: c.clk.Now().Add(ttl)})
	}

	return nil
}

// Cancel removes v from the auto-resend list and the backlog. It reports
// true iff v was still sitting in the backlog (i.e. had not reached the
// wire), which callers use to decide whether a compensating verb is
// required.
func (c *Core) Cancel(v verb.Verb) bool {
	for i, x := range c.autoResend {
		if x == v {
			c.autoResend = append(c.autoResend[:i], c.autoResend[i+1:]...)
			break
		}
	}

	for i, e := range c.backlog {
		if e.verb == v {
			c.backlog = append(c.backlog[:i], c.backlog[i+1:]...)
			return true
		}
	}

	return false
}

// NewMessageRef allocates the next messageref and binds handler to it.
func (c *Core) NewMessageRef(handler func(*verb.Message)) uint64 {
	ref := c.nextMessageRef
	c.nextMessageRef++
	c.messageHandlers[ref] = handler
	return ref
}

// DiscardMessageRef releases a messageref previously returned by
// NewMessageRef. It is a no-op if the ref is unknown.
func (c *Core) DiscardMessageRef(ref uint64) {
	delete(c.messageHandlers, ref)
}

// SetCallHandler installs handler as the CALL handler for name, or clears
// it if handler is nil.
func (c *Core) SetCallHandler(name string, handler func(*verb.Call)) {
	if handler == nil {
		delete(c.callHandlers, name)
		return
	}
	c.callHandlers[name] = handler
}

// SetInterestHandler installs handler as the INTEREST handler for name, or
// clears it if handler is nil.
func (c *Core) SetInterestHandler(name string, handler func(*verb.Interest)) {
	if handler == nil {
		delete(c.interestHandlers, name)
		return
	}
	c.interestHandlers[name] = handler
}

// AddConnectionLostHandler registers handler to be called every time the
// connection transitions out of Ready, returning an id RemoveConnectionLostHandler
// can later use to unregister it.
func (c *Core) AddConnectionLostHandler(handler func()) uint64 {
	c.nextLostID++
	id := c.nextLostID
	c.connectionLostHandlers[id] = handler
	return id
}

// RemoveConnectionLostHandler unregisters a handler previously added with
// AddConnectionLostHandler.
func (c *Core) RemoveConnectionLostHandler(id uint64) {
	delete(c.connectionLostHandlers, id)
}
