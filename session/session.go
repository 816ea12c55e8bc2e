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
	"github.com/nabbar/nxtcp/logger"
	"github.com/nabbar/nxtcp/verb"
)

// Session claims a named session on the server. It owns the per-name
// call and interest handler slots on the dispatcher, and synthesizes a
// NO_INTEREST delivery for every topic it currently holds whenever the
// connection drops, so the application never sees a dangling interest
// across a reconnect.
type Session struct {
	core *dispatch.Core
	log  logger.Logger

	name    string
	force   bool
	persist bool
	standby bool

	callHandlers     *handlerset.Set[*Call]
	interestHandlers *handlerset.Set[*Interest]
	currentInterest  map[string]*verb.Interest

	lostHandlerID uint64
	verb          *verb.Login
}

func newSession(ch *Channel, name string, force, persist, standby bool) *Session {
	s := &Session{
		core:             ch.core,
		log:              ch.log,
		name:             name,
		force:            force,
		persist:          persist,
		standby:          standby,
		callHandlers:     handlerset.NewSet[*Call](),
		interestHandlers: handlerset.NewSet[*Interest](),
		currentInterest:  make(map[string]*verb.Interest),
	}

	s.core.SetCallHandler(name, s.onCall)
	s.core.SetInterestHandler(name, s.onInterest)
	s.lostHandlerID = s.core.AddConnectionLostHandler(s.onConnectionLost)

	s.verb = &verb.Login{Name: []byte(name), Enforce: force, Standby: standby, Persist: persist}
	_ = s.core.PutUpstream(s.verb, 0, true)

	return s
}

// AddCallHandler registers handler for every inbound call addressed to
// this session.
func (s *Session) AddCallHandler(handler func(*Call)) {
	s.callHandlers.Add(handlerset.AnyFilter, handler)
}

// AddInterestHandler registers handler for interest updates, restricted
// to filter (FilterInterestAny if 0).
func (s *Session) AddInterestHandler(handler func(*Interest), filter InterestFilter) {
	if filter == 0 {
		filter = FilterInterestAny
	}
	s.interestHandlers.Add(filter, handler)
}

func (s *Session) onCall(v *verb.Call) {
	s.callHandlers.Dispatch(handlerset.AnyFilter, newCall(s.core, s.log, v))
}

func (s *Session) onInterest(v *verb.Interest) {
	topic := string(v.Topic)
	if v.Status == verb.StatusInterest {
		s.currentInterest[topic] = v
	} else {
		delete(s.currentInterest, topic)
	}

	interest := newInterest(s.core, s.log, v)
	s.interestHandlers.Dispatch(interestFilterFromStatus(interest.Status), interest)
}

// onConnectionLost simulates a NO_INTEREST delivery for every topic this
// session currently believes has an interested peer, then clears that
// set -- spec.md §4.4's "Connection-lost simulation of NO_INTEREST".
func (s *Session) onConnectionLost() {
	lost := make([]*verb.Interest, 0, len(s.currentInterest))
	for _, v := range s.currentInterest {
		lost = append(lost, v)
	}
	s.currentInterest = make(map[string]*verb.Interest)

	for _, v := range lost {
		synthetic := &verb.Interest{PostRef: v.PostRef, Name: v.Name, Status: verb.StatusNoInterest, Topic: v.Topic}
		interest := newInterest(s.core, s.log, synthetic)
		s.interestHandlers.Dispatch(interestFilterFromStatus(interest.Status), interest)
	}
}

// Cancel ends the session: it first tries to remove the LOGIN verb
// before it reached the wire, falling back to an explicit LOGOUT if that
// failed, then releases the per-name handler slots.
func (s *Session) Cancel() {
	if !s.core.Cancel(s.verb) {
		_ = s.core.PutUpstream(&verb.Logout{Name: []byte(s.name)}, 0, false)
	}
	s.core.SetCallHandler(s.name, nil)
	s.core.SetInterestHandler(s.name, nil)
	s.core.RemoveConnectionLostHandler(s.lostHandlerID)
}
