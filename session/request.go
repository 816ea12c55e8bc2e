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

	"github.com/nabbar/nxtcp/dispatch"
	"github.com/nabbar/nxtcp/handlerset"
	"github.com/nabbar/nxtcp/verb"
)

const (
	defaultRequestTimeout = 5 * time.Second
	defaultRequestTTL     = 5 * time.Second
)

// RequestStub captures the default name/payload/timeout/ttl for a
// request that may be Send() multiple times, each send optionally
// overriding any of them. Handlers added before a Send apply to every
// Request it spawns, because each spawned Request shares the stub's
// handler set rather than copying it -- the same reference-sharing
// channel.py's RequestStub.send() relies on.
type RequestStub struct {
	core *dispatch.Core

	name    string
	payload interface{}
	timeout time.Duration
	ttl     time.Duration

	handlers *handlerset.Set[*Message]
}

func newRequestStub(ch *Channel, name string, payload interface{}, timeout, ttl *time.Duration) *RequestStub {
	t := defaultRequestTimeout
	if timeout != nil {
		t = *timeout
	}
	tt := defaultRequestTTL
	if ttl != nil {
		tt = *ttl
	}

	return &RequestStub{
		core:     ch.core,
		name:     name,
		payload:  payload,
		timeout:  t,
		ttl:      tt,
		handlers: handlerset.NewSet[*Message](),
	}
}

// AddHandler registers handler for responses to every Request this stub
// sends from now on, restricted to filter (FilterMessageAny if 0).
func (r *RequestStub) AddHandler(handler func(*Message), filter MessageFilter) {
	if filter == 0 {
		filter = FilterMessageAny
	}
	r.handlers.Add(filter, handler)
}

// Send issues the request using the stub's captured name/payload/timeout/ttl.
func (r *RequestStub) Send() *Request {
	return r.send(r.name, r.payload, r.timeout, r.ttl)
}

// SendWith issues the request, overriding any of name/payload/timeout/ttl
// whose pointer is non-nil; nil means "use the stub's value".
func (r *RequestStub) SendWith(name *string, payload interface{}, timeout, ttl *time.Duration) *Request {
	n := r.name
	if name != nil {
		n = *name
	}
	p := r.payload
	if payload != nil {
		p = payload
	}
	t := r.timeout
	if timeout != nil {
		t = *timeout
	}
	tt := r.ttl
	if ttl != nil {
		tt = *ttl
	}
	return r.send(n, p, t, tt)
}

func (r *RequestStub) send(name string, payload interface{}, timeout, ttl time.Duration) *Request {
	unidirectional := r.handlers.Len() == 0

	req := &Request{core: r.core, handlers: r.handlers}

	var ref uint64
	if !unidirectional {
		ref = r.core.NewMessageRef(req.onMessage)
	}
	req.messageRef = ref

	payloadRaw, _ := r.core.EncodePayload(payload)
	req.verb = &verb.Request{
		Name:           []byte(name),
		Unidirectional: unidirectional,
		MessageRef:     ref,
		Timeout:        uint64(timeout / time.Millisecond),
		Payload:        payloadRaw,
	}
	_ = r.core.PutUpstream(req.verb, ttl, false)

	return req
}

// Request is a single issued request, returned by RequestStub.Send or
// RequestStub.SendWith.
type Request struct {
	core *dispatch.Core

	handlers   *handlerset.Set[*Message]
	messageRef uint64
	verb       *verb.Request
}

func (req *Request) onMessage(v *verb.Message) {
	msg := newMessage(req.core, v)
	req.handlers.Dispatch(messageFilterFromStatus(msg.Status), msg)
	req.core.DiscardMessageRef(req.messageRef)
}

// Cancel attempts to withdraw the request before it reached the wire.
// Once sent, cancellation has no effect -- documented here as in
// spec.md §4.5, not treated as an error.
func (req *Request) Cancel() {
	req.core.Cancel(req.verb)
	req.core.DiscardMessageRef(req.messageRef)
}
