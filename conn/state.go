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
	"net"

	"github.com/nabbar/nxtcp/ctxutil"
	liberr "github.com/nabbar/nxtcp/errors"
	"github.com/nabbar/nxtcp/ioutils/mapcloser"
	"github.com/nabbar/nxtcp/logger"
	"github.com/nabbar/nxtcp/wire"
)

// attemptFields extracts the attempt/remote/client-id attributes a
// ctxutil.Bag built by doConnect carries, for attaching to every log entry
// produced during that connect attempt's lifetime.
func attemptFields(bag ctxutil.Bag) logger.Fields {
	f := logger.Fields{}
	bag.Walk(func(key string, val interface{}) bool {
		f[key] = val
		return true
	})
	return f
}

// Every method in this file runs exclusively on the eventloop.Loop
// goroutine (posted there by Start/Stop, a dial goroutine, a read-pump
// goroutine, or a timer callback), so none of it needs its own locking --
// the same invariant original_source/.../connection.py relies on by being
// driven entirely from evaluate_state().

func (c *NxtcpConn) onIdle() {
	c.setState(StateIdle)
	if c.autoConnect {
		c.doConnect()
	}
}

func (c *NxtcpConn) doConnect() {
	c.setState(StateConnecting)

	c.attemptSeq++
	bag := ctxutil.New(context.Background())
	bag.Set("attempt", c.attemptSeq)
	bag.Set("remote", c.address)
	if c.clientID != "" {
		bag.Set("client-id", c.clientID)
	}

	ctx, cancel := context.WithCancel(bag)
	c.attemptCancel = cancel
	c.closer = mapcloser.New(ctx)

	timer := c.loop.AfterFunc(c.connectTimeout, c.onConnectTimeout)
	c.closer.Add(timerCloser{stop: timer.Stop})

	c.log.Info("initiating connection", attemptFields(bag))

	go func() {
		nc, err := c.dialer.DialContext(ctx, c.address)
		c.loop.Post(func() { c.onDialResult(bag, nc, err) })
	}()
}

func (c *NxtcpConn) onConnectTimeout() {
	if c.State() != StateConnecting {
		return
	}
	c.log.Info("connection attempt timed out", nil)
	c.doFailed(liberr.New(liberr.ErrConnectTimeout, "connect attempt timed out"))
}

func (c *NxtcpConn) onDialResult(bag ctxutil.Bag, nc net.Conn, err error) {
	if c.State() != StateConnecting {
		// a superseded attempt's result arriving late; drop it.
		if nc != nil {
			_ = nc.Close()
		}
		return
	}

	if err != nil {
		c.log.Error("dial failed", err, attemptFields(bag))
		c.doFailed(liberr.Wrap(liberr.ErrDial, "dial failed", err))
		return
	}

	c.raw = nc
	c.enc = wire.NewEncoder()
	c.dec = wire.NewDecoder()
	c.wake = make(chan struct{}, 1)
	c.closer.Add(nc)

	stop := make(chan struct{})
	c.closer.Add(closerFunc(func() error { close(stop); return nil }))

	go c.readPump(bag, nc, stop)
	go c.writePump(nc, c.wake, stop)

	c.coolDownIdx = 0
	c.coolDownIdxPub.Store(0)
	c.doWaitWelcome()
}

func (c *NxtcpConn) doWaitWelcome() {
	c.setState(StateWaitWelcome)

	timer := c.loop.AfterFunc(c.welcomeTimeout, c.onWelcomeTimeout)
	c.closer.Add(timerCloser{stop: timer.Stop})

	c.log.Info("connection successful, waiting for welcome message", nil)
}

func (c *NxtcpConn) onWelcomeTimeout() {
	if c.State() != StateWaitWelcome {
		return
	}
	c.log.Info("no welcome message received", nil)
	c.doFailed(liberr.New(liberr.ErrWelcomeTimeout, "no welcome packet received in time"))
}

func (c *NxtcpConn) doReady() {
	c.setState(StateReady)
	c.updateReady(true)
	c.log.Info("welcome message received", nil)
}

func (c *NxtcpConn) doFailed(cause error) {
	c.setState(StateFailed)
	c.teardown()
	c.updateReady(false)

	d := c.coolDown[c.coolDownIdx]
	if c.coolDownIdx < len(c.coolDown)-1 {
		c.coolDownIdx++
	}
	c.coolDownIdxPub.Store(int32(c.coolDownIdx))

	c.log.Error("connection failed, cooling down", cause, logger.Fields{"cooldown": d.String()})
	c.loop.AfterFunc(d, c.onCooldownExpired)
}

func (c *NxtcpConn) onCooldownExpired() {
	if c.State() != StateFailed {
		return
	}
	c.onIdle()
}

func (c *NxtcpConn) onTransportError(err error) {
	if c.State() == StateReady || c.State() == StateWaitWelcome {
		c.doFailed(liberr.Wrap(liberr.ErrTransport, "transport error", err))
	}
}

func (c *NxtcpConn) onByeBye() {
	c.doFailed(liberr.New(liberr.ErrTransport, "server sent BYEBYE"))
}

func (c *NxtcpConn) onWelcome(w *wire.Welcome) {
	if w.ProtocolVersion != 1 {
		c.log.Error("unsupported protocol version", nil, logger.Fields{"version": w.ProtocolVersion})
	}
	if c.State() == StateWaitWelcome {
		c.doReady()
	}
}

func (c *NxtcpConn) onPing() {
	c.log.Debug("ping received, sending pong", nil)
	_ = c.SendVerb(wire.Pong{})
}

// handlePacket dispatches one decoded frame: connection-level control
// packets are handled here, everything else is forwarded to the
// downstream handler installed by package dispatch.
func (c *NxtcpConn) handlePacket(pkt interface{}) {
	switch p := pkt.(type) {
	case *wire.Welcome:
		c.onWelcome(p)
	case wire.Ping:
		c.onPing()
	case wire.Pong:
		// servers don't send PONG; ignore defensively.
	case wire.ByeBye:
		c.onByeBye()
	case wire.Quit:
		// upstream-only packet; a server should never send it.
	default:
		if c.downstream != nil {
			c.downstream(pkt)
		}
	}
}
