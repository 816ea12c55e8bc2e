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

package eventloop

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/nabbar/nxtcp/clock"
)

// timerEntry is one pending AfterFunc callback, ordered by deadline in the
// loop's min-heap (the Go counterpart of mainloop.py's
// heapq-backed timer_deadlines list).
type timerEntry struct {
	deadline time.Time
	id       uint64
	fn       func()
	index    int // heap.Interface bookkeeping
}

type timerHeap []*timerEntry

func (h timerHeap) Len() int            { return len(h) }
func (h timerHeap) Less(i, j int) bool  { return h[i].deadline.Before(h[j].deadline) }
func (h timerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *timerHeap) Push(x interface{}) {
	e := x.(*timerEntry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *timerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

type loopTimer struct {
	l  *loop
	id uint64
}

func (t *loopTimer) Stop() bool {
	return t.l.cancel(t.id)
}

// loop is the default Loop implementation.
type loop struct {
	clk clock.Clock

	mu     sync.Mutex
	timers timerHeap
	byID   map[uint64]*timerEntry
	nextID uint64

	tasks    chan func()
	shutdown chan struct{}
	once     sync.Once
	wake     chan struct{}
}

// New returns a Loop driven by clk (use clock.New() for production,
// clock.NewFake(...) to drive timers deterministically from a test).
func New(clk clock.Clock) Loop {
	return &loop{
		clk:      clk,
		byID:     make(map[uint64]*timerEntry),
		tasks:    make(chan func(), 256),
		shutdown: make(chan struct{}),
		wake:     make(chan struct{}, 1),
	}
}

func (l *loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.tasks <- fn
}

func (l *loop) AfterFunc(d time.Duration, fn func()) Timer {
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	e := &timerEntry{deadline: l.clk.Now().Add(d), id: id, fn: fn}
	l.byID[id] = e
	heap.Push(&l.timers, e)
	l.mu.Unlock()

	l.signalWake()
	return &loopTimer{l: l, id: id}
}

func (l *loop) cancel(id uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.byID[id]
	if !ok {
		return false
	}
	delete(l.byID, id)
	heap.Remove(&l.timers, e.index)
	return true
}

func (l *loop) signalWake() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *loop) Shutdown() {
	l.once.Do(func() { close(l.shutdown) })
}

func (l *loop) Run(ctx context.Context) error {
	for {
		var timerC <-chan time.Time

		l.mu.Lock()
		if len(l.timers) > 0 {
			d := l.timers[0].deadline.Sub(l.clk.Now())
			if d < 0 {
				d = 0
			}
			timerC = l.clk.After(d)
		}
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.shutdown:
			return nil
		case fn := <-l.tasks:
			fn()
		case <-l.wake:
		case <-timerC:
			l.fireExpired()
		}
	}
}

func (l *loop) fireExpired() {
	now := l.clk.Now()
	var due []func()

	l.mu.Lock()
	for len(l.timers) > 0 && !l.timers[0].deadline.After(now) {
		e := heap.Pop(&l.timers).(*timerEntry)
		delete(l.byID, e.id)
		due = append(due, e.fn)
	}
	l.mu.Unlock()

	for _, fn := range due {
		fn()
	}
}
