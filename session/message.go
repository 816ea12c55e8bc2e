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
	"fmt"
	"time"

	"github.com/nabbar/nxtcp/dispatch"
	"github.com/nabbar/nxtcp/logger"
	"github.com/nabbar/nxtcp/verb"
)

// defaultPostTTL is Call.post/Interest.post's fallback ttl when none is
// given, matching Call.default_ttl/Interest.default_ttl in channel.py.
const defaultPostTTL = 5 * time.Second

// Message is delivered to Subscription and Request handlers. Payload is
// decoded through the Channel's Serializer and is nil unless Status is
// verb.StatusOK.
type Message struct {
	Status  verb.MessageStatus
	Payload interface{}
}

func newMessage(core *dispatch.Core, v *verb.Message) *Message {
	m := &Message{Status: v.Status}
	if v.Status == verb.StatusOK {
		m.Payload, _ = core.DecodePayload(v.Payload)
	}
	return m
}

func (m *Message) String() string {
	return fmt.Sprintf("Message(%s, %v)", m.Status, m.Payload)
}

// Call represents an inbound call delivered to a Session's call handlers.
// Post replies to it; a unidirectional call cannot be replied to.
type Call struct {
	core    *dispatch.Core
	log     logger.Logger
	postRef uint64

	Unidirectional bool
	Name           string
	Payload        interface{}
}

func newCall(core *dispatch.Core, log logger.Logger, v *verb.Call) *Call {
	payload, _ := core.DecodePayload(v.Payload)
	return &Call{
		core:           core,
		log:            log,
		postRef:        v.PostRef,
		Unidirectional: v.Unidirectional,
		Name:           string(v.Name),
		Payload:        payload,
	}
}

func (c *Call) String() string {
	return fmt.Sprintf("Call(%s, %v)", c.Name, c.Payload)
}

// Post replies to the call with payload. If the call was unidirectional,
// the post is logged and dropped; ttl defaults to 5s.
func (c *Call) Post(payload interface{}, ttl time.Duration) *Post {
	if c.Unidirectional {
		c.log.Warning("post done on unidirectional call, ignoring", logger.Fields{"name": c.Name})
		return nil
	}
	if ttl == 0 {
		ttl = defaultPostTTL
	}
	return newPost(c.core, c.postRef, payload, ttl)
}

// Interest represents an inbound interest notice delivered to a Session's
// interest handlers. Post replies to it, but only while Status is
// verb.StatusInterest.
type Interest struct {
	core    *dispatch.Core
	log     logger.Logger
	postRef uint64

	Status verb.InterestStatus
	Name   string
	Topic  interface{}
}

func newInterest(core *dispatch.Core, log logger.Logger, v *verb.Interest) *Interest {
	topic, _ := core.DecodePayload(v.Topic)
	return &Interest{
		core:    core,
		log:     log,
		postRef: v.PostRef,
		Status:  v.Status,
		Name:    string(v.Name),
		Topic:   topic,
	}
}

func (i *Interest) String() string {
	return fmt.Sprintf("Interest(%s, %s, %v)", i.Name, i.Status, i.Topic)
}

// Post replies to the interest with payload, unless the interest has
// already been lost (Status != verb.StatusInterest), in which case the
// post is logged and dropped. ttl defaults to 5s.
func (i *Interest) Post(payload interface{}, ttl time.Duration) *Post {
	if i.Status != verb.StatusInterest {
		i.log.Warning("post attempted on lost interest, ignoring", logger.Fields{"name": i.Name})
		return nil
	}
	if ttl == 0 {
		ttl = defaultPostTTL
	}
	return newPost(i.core, i.postRef, payload, ttl)
}

// Post is a reply enqueued against a Call's or Interest's postref. Cancel
// withdraws it if it has not yet reached the wire.
type Post struct {
	core *dispatch.Core
	verb *verb.Post
}

func newPost(core *dispatch.Core, postRef uint64, payload interface{}, ttl time.Duration) *Post {
	raw, _ := core.EncodePayload(payload)
	p := &Post{core: core, verb: &verb.Post{PostRef: postRef, Payload: raw}}
	_ = core.PutUpstream(p.verb, ttl, false)
	return p
}

// Cancel withdraws the post. It has no effect once the post has already
// reached the wire.
func (p *Post) Cancel() {
	p.core.Cancel(p.verb)
}
