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

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nabbar/nxtcp/clock"
	"github.com/nabbar/nxtcp/config"
	"github.com/nabbar/nxtcp/ctxutil"
	liberr "github.com/nabbar/nxtcp/errors"
	"github.com/nabbar/nxtcp/eventloop"
	"github.com/nabbar/nxtcp/handlerset"
	"github.com/nabbar/nxtcp/ioutils/mapcloser"
	"github.com/nabbar/nxtcp/logger"
	"github.com/nabbar/nxtcp/wire"
)

// NxtcpConn is the default Conn implementation: one TCP link driven through
// Idle -> Connecting -> WaitWelcome -> Ready -> Failed, per
// SPEC_FULL.md §4.3.
type NxtcpConn struct {
	loop   eventloop.Loop
	clk    clock.Clock
	log    logger.Logger
	dialer Dialer

	address string

	connectTimeout time.Duration
	welcomeTimeout time.Duration
	coolDown       []time.Duration
	coolDownIdx    int
	coolDownIdxPub atomic.Int32

	mu    sync.Mutex
	state State
	ready bool

	readyHandlers *handlerset.Set[bool]
	downstream    func(pkt interface{})

	autoConnect bool
	clientID    string
	attemptSeq  int

	attemptCancel context.CancelFunc
	closer        mapcloser.Closer

	raw net.Conn
	enc *wire.Encoder
	dec *wire.Decoder
	wake chan struct{}
}

// New returns an idle NxtcpConn for cfg's host:port, driven by loop and clk.
// log receives every state-transition and error entry. dialer is usually
// NewDialer(); tests substitute a scripted one.
func New(loop eventloop.Loop, clk clock.Clock, log logger.Logger, cfg *config.Config, dialer Dialer) *NxtcpConn {
	coolDown := make([]time.Duration, 0, len(cfg.CoolDown))
	for _, d := range cfg.CoolDown {
		coolDown = append(coolDown, d.Time())
	}

	return &NxtcpConn{
		loop:           loop,
		clk:            clk,
		log:            log,
		dialer:         dialer,
		address:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		connectTimeout: cfg.ConnectTimeout.Time(),
		welcomeTimeout: cfg.WelcomeTimeout.Time(),
		coolDown:       coolDown,
		readyHandlers:  handlerset.NewSet[bool](),
		autoConnect:    true,
	}
}

func (c *NxtcpConn) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *NxtcpConn) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// SetClientID attaches id to every connect-attempt log entry's "client-id"
// field, alongside the per-attempt sequence number and remote address
// carried in the ctxutil.Bag built by doConnect. Optional; the zero value
// omits the field.
func (c *NxtcpConn) SetClientID(id string) {
	c.clientID = id
}

// CoolDownIndex reports the current index into the cool-down schedule,
// published by the loop goroutine so a metrics poller on another
// goroutine can read it without racing.
func (c *NxtcpConn) CoolDownIndex() int {
	return int(c.coolDownIdxPub.Load())
}

func (c *NxtcpConn) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *NxtcpConn) AddReadyHandler(fn func(ready bool)) uint64 {
	id := c.readyHandlers.Add(handlerset.AnyFilter, fn)
	fn(c.Ready())
	return id
}

func (c *NxtcpConn) RemoveReadyHandler(id uint64) bool {
	return c.readyHandlers.Remove(id)
}

func (c *NxtcpConn) SetDownstreamHandler(fn func(pkt interface{})) {
	c.downstream = fn
}

func (c *NxtcpConn) updateReady(state bool) {
	c.mu.Lock()
	prev := c.ready
	c.ready = state
	c.mu.Unlock()

	if prev == state {
		return
	}

	if state {
		c.log.Info("connection is ready", nil)
	} else {
		c.log.Info("connection is not ready", nil)
	}
	c.readyHandlers.Dispatch(handlerset.AnyFilter, state)
}

func (c *NxtcpConn) SendVerb(v interface{}) error {
	c.mu.Lock()
	ready := c.state == StateReady
	enc := c.enc
	c.mu.Unlock()

	if !ready || enc == nil {
		return liberr.New(liberr.ErrTransport, "connection not ready")
	}
	if err := enc.Put(v); err != nil {
		return err
	}
	select {
	case c.wake <- struct{}{}:
	default:
	}
	return nil
}

func (c *NxtcpConn) Start(ctx context.Context) {
	c.loop.Post(func() { c.onIdle() })

	if ctx != nil {
		go func() {
			<-ctx.Done()
			c.Stop()
		}()
	}
}

func (c *NxtcpConn) Stop() {
	c.loop.Post(func() {
		c.autoConnect = false
		c.teardown()
		c.setState(StateIdle)
		c.updateReady(false)
	})
}

func (c *NxtcpConn) teardown() {
	if c.closer != nil {
		_ = c.closer.Close()
		c.closer = nil
	}
	if c.attemptCancel != nil {
		c.attemptCancel()
		c.attemptCancel = nil
	}
	c.raw = nil
	c.enc = nil
	c.dec = nil
	c.wake = nil
}
