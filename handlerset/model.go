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

package handlerset

import "sync"

// Filter is a bitmask of event-status bits (e.g. verb.MessageStatus or
// verb.InterestStatus, each lifted to its own bit). AnyFilter matches
// every registration regardless of status.
type Filter uint32

// AnyFilter matches every event, used as the default filter for handler
// kinds the spec doesn't status-gate (e.g. Session.AddCallHandler).
const AnyFilter Filter = ^Filter(0)

type entry[T any] struct {
	id     uint64
	filter Filter
	fn     func(T)
}

// Set is a registration-ordered list of filterable handlers for event type
// T. Add returns an id Remove can later use to unregister a single handler;
// Dispatch invokes, in registration order, every handler whose filter
// intersects status.
type Set[T any] struct {
	mu      sync.Mutex
	nextID  uint64
	entries []entry[T]
}

// NewSet returns an empty handler set for event type T.
func NewSet[T any]() *Set[T] {
	return &Set[T]{}
}

// Add registers fn under filter, returning an id usable with Remove.
func (s *Set[T]) Add(filter Filter, fn func(T)) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.entries = append(s.entries, entry[T]{id: id, filter: filter, fn: fn})
	return id
}

// Remove unregisters the handler previously returned by Add, if still
// present. Reports whether a handler was actually removed.
func (s *Set[T]) Remove(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len reports how many handlers are currently registered.
func (s *Set[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Dispatch invokes, in registration order, every handler whose filter has
// a non-empty intersection with status, passing evt to each. A status of 0
// matches no handler.
func (s *Set[T]) Dispatch(status Filter, evt T) {
	s.mu.Lock()
	matched := make([]func(T), 0, len(s.entries))
	for _, e := range s.entries {
		if e.filter&status != 0 {
			matched = append(matched, e.fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range matched {
		fn(evt)
	}
}
