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
	"github.com/nabbar/nxtcp/logger"
	"github.com/nabbar/nxtcp/verb"
)

// onConnectionReady is installed as the connection's ready handler. On a
// transition into ready it replays the auto-resend list (state-defining
// verbs first, per spec.md §4.4's "server-visible state is restored
// before transient operations"), then drains the backlog head-to-tail,
// skipping any entry whose deadline has already passed. On a transition
// out of ready it fans out to every connection-lost handler so session
// handles can synthesize NO_INTEREST for their currently-held topics.
func (c *Core) onConnectionReady(ready bool) {
	c.ready = ready

	if !ready {
		for _, handler := range c.connectionLostHandlers {
			handler()
		}
		return
	}

	c.log.Info("dispatcher flushing auto-resend and backlog", logger.Fields{
		"auto_resend": len(c.autoResend),
		"backlog":     len(c.backlog),
	})

	for _, v := range c.autoResend {
		if err := c.cn.SendVerb(v); err == nil {
			c.verbsSent++
		}
	}

	now := c.clk.Now()
	for _, e := range c.backlog {
		if !e.deadline.IsZero() && now.After(e.deadline) {
			continue
		}
		if err := c.cn.SendVerb(e.verb); err == nil {
			c.verbsSent++
		}
	}
	c.backlog = c.backlog[:0]
}

// onIncomingVerb is installed as the connection's downstream handler. It
// validates the decoded verb and routes it to the matching handler
// registry, logging and discarding on a validation failure or a dispatch
// miss (spec.md §4.4 "Dispatch of downstream verbs").
func (c *Core) onIncomingVerb(pkt interface{}) {
	v, ok := pkt.(verb.Verb)
	if !ok {
		c.log.Warning("received a non-verb packet downstream", nil)
		return
	}

	if err := v.Validate(); err != nil {
		c.log.Warning("received invalid verb", logger.Fields{"kind": v.Kind().String(), "error": err.Error()})
		return
	}

	c.verbsReceived++

	switch p := v.(type) {
	case *verb.Message:
		c.onMessage(p)
	case *verb.Call:
		c.onCall(p)
	case *verb.Interest:
		c.onInterest(p)
	case *verb.Session:
		c.onSession(p)
	default:
		c.log.Warning("no dispatch route for verb kind", logger.Fields{"kind": v.Kind().String()})
	}
}

// onMessage looks up the handler bound to the MESSAGE's ref and invokes
// it. The handler itself decides whether to discard the ref (one-shot for
// Request, kept alive across deliveries for Subscription).
func (c *Core) onMessage(m *verb.Message) {
	handler, ok := c.messageHandlers[m.MessageRef]
	if !ok {
		c.log.Warning("no handler for message", logger.Fields{"messageref": m.MessageRef})
		return
	}
	handler(m)
}

func (c *Core) onCall(call *verb.Call) {
	handler, ok := c.callHandlers[string(call.Name)]
	if !ok {
		c.log.Warning("no handler for call", logger.Fields{"name": string(call.Name)})
		return
	}
	handler(call)
}

func (c *Core) onInterest(interest *verb.Interest) {
	handler, ok := c.interestHandlers[string(interest.Name)]
	if !ok {
		c.log.Warning("no handler for interest", logger.Fields{"name": string(interest.Name)})
		return
	}
	handler(interest)
}

func (c *Core) onSession(s *verb.Session) {
	c.log.Info("session state changed", logger.Fields{"name": string(s.Name), "state": s.State.String()})
}
