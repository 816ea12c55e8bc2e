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
	"github.com/nabbar/nxtcp/dispatch"
	"github.com/nabbar/nxtcp/handlerset"
	"github.com/nabbar/nxtcp/verb"
)

// Subscription represents a live subscription to a topic under a named
// session. Handlers added with AddHandler are invoked, in registration
// order, for every message whose status intersects their filter.
type Subscription struct {
	core  *dispatch.Core
	name  string
	topic interface{}

	messageRef uint64
	handlers   *handlerset.Set[*Message]
	verb       *verb.Subscribe
}

func newSubscription(ch *Channel, name string, topic interface{}) *Subscription {
	s := &Subscription{
		core:     ch.core,
		name:     name,
		topic:    topic,
		handlers: handlerset.NewSet[*Message](),
	}

	s.messageRef = ch.core.NewMessageRef(s.onMessage)

	topicRaw, _ := ch.core.EncodePayload(topic)
	s.verb = &verb.Subscribe{
		Name:       []byte(name),
		MessageRef: s.messageRef,
		Topic:      topicRaw,
	}
	_ = ch.core.PutUpstream(s.verb, 0, true)

	return s
}

// AddHandler registers handler for messages delivered to this
// subscription, restricted to filter (FilterMessageAny if filter is 0).
func (s *Subscription) AddHandler(handler func(*Message), filter MessageFilter) {
	if filter == 0 {
		filter = FilterMessageAny
	}
	s.handlers.Add(filter, handler)
}

func (s *Subscription) onMessage(v *verb.Message) {
	msg := newMessage(s.core, v)
	s.handlers.Dispatch(messageFilterFromStatus(msg.Status), msg)
}

// Cancel withdraws the subscription: it first tries to remove the
// SUBSCRIBE verb before it reaches the wire, falling back to an explicit
// UNSUBSCRIBE if that failed, then releases the messageref.
func (s *Subscription) Cancel() {
	if !s.core.Cancel(s.verb) {
		_ = s.core.PutUpstream(&verb.Unsubscribe{Name: []byte(s.name), Topic: s.verb.Topic}, 0, false)
	}
	s.core.DiscardMessageRef(s.messageRef)
}
