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

package session

import (
	"time"

	"github.com/nabbar/nxtcp/clock"
	"github.com/nabbar/nxtcp/conn"
	"github.com/nabbar/nxtcp/dispatch"
	"github.com/nabbar/nxtcp/logger"
	"github.com/nabbar/nxtcp/serializer"
)

// Channel is the main entry point for interacting with an nxtcp server.
// Obtain one with NewChannel once a conn.Conn has been built and started.
type Channel struct {
	core *dispatch.Core
	log  logger.Logger
}

// NewChannel wires a dispatch.Core on top of cn and returns the Channel
// that hands out subscriptions, sessions and requests through it.
func NewChannel(cn conn.Conn, ser serializer.Serializer, clk clock.Clock, log logger.Logger) *Channel {
	return &Channel{
		core: dispatch.New(cn, ser, clk, log),
		log:  log,
	}
}

// Subscribe opens a subscription to topic under the named session.
func (ch *Channel) Subscribe(name string, topic interface{}) *Subscription {
	return newSubscription(ch, name, topic)
}

// Session logs into a named session. force requests the server evict any
// existing login under the same name, persist keeps the login alive
// across reconnects, and standby suppresses call delivery until promoted.
func (ch *Channel) Session(name string, force, persist, standby bool) *Session {
	return newSession(ch, name, force, persist, standby)
}

// Request prepares a request stub for a named session. payload, timeout
// and ttl are the defaults used by Send(); any may be overridden per-call
// through SendWith.
func (ch *Channel) Request(name string, payload interface{}, timeout, ttl *time.Duration) *RequestStub {
	return newRequestStub(ch, name, payload, timeout, ttl)
}

// Core returns the dispatch.Core this Channel rides on, for callers that
// need to observe it directly -- e.g. package metrics's Collector.
func (ch *Channel) Core() *dispatch.Core {
	return ch.core
}
