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

package conn_test

import (
	"context"
	"errors"
	"io"
	"net"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/nxtcp/clock"
	"github.com/nabbar/nxtcp/config"
	"github.com/nabbar/nxtcp/conn"
	"github.com/nabbar/nxtcp/eventloop"
	"github.com/nabbar/nxtcp/logger"
	"github.com/nabbar/nxtcp/verb"
	"github.com/nabbar/nxtcp/wire"
)

// funcDialer lets each test script exactly what a connect attempt yields.
type funcDialer struct {
	fn func() (net.Conn, error)
}

func (f funcDialer) DialContext(_ context.Context, _ string) (net.Conn, error) {
	return f.fn()
}

func newTestConfig() *config.Config {
	cfg := config.Default()
	cfg.Host = "test"
	cfg.Port = 4242
	return cfg
}

func readFrame(t net.Conn) (interface{}, error) {
	dec := wire.NewDecoder()
	buf := make([]byte, 256)
	for {
		if pkt, ok, err := dec.TryDecode(); ok || err != nil {
			return pkt, err
		}
		n, err := t.Read(buf)
		if n > 0 {
			dec.Feed(buf[:n])
		}
		if err != nil {
			return nil, err
		}
	}
}

var _ = Describe("NxtcpConn", func() {
	var (
		ctx  context.Context
		l    eventloop.Loop
		log  logger.Logger
		fake *clock.Fake
	)

	BeforeEach(func() {
		ctx = context.Background()
		fake = clock.NewFake(time.Unix(0, 0))
		l = eventloop.New(fake)
		log = logger.New(logger.NilLevel, io.Discard)
		go func() { _ = l.Run(ctx) }()
	})

	It("becomes ready after a WELCOME packet and notifies the ready handler", func() {
		client, server := net.Pipe()
		d := funcDialer{fn: func() (net.Conn, error) { return client, nil }}

		c := conn.New(l, fake, log, newTestConfig(), d)

		var states []bool
		c.AddReadyHandler(func(ready bool) { states = append(states, ready) })
		Expect(states).To(Equal([]bool{false}))

		c.Start(ctx)

		go func() {
			frame, _ := wire.Encode(&wire.Welcome{ServerVersion: 1, ProtocolVersion: 1})
			_, _ = server.Write(frame)
		}()

		Eventually(c.Ready, time.Second, 10*time.Millisecond).Should(BeTrue())
		Expect(c.State()).To(Equal(conn.StateReady))
	})

	It("answers a PING with a PONG once ready", func() {
		client, server := net.Pipe()
		d := funcDialer{fn: func() (net.Conn, error) { return client, nil }}

		c := conn.New(l, fake, log, newTestConfig(), d)
		c.Start(ctx)

		go func() {
			welcome, _ := wire.Encode(&wire.Welcome{ServerVersion: 1, ProtocolVersion: 1})
			_, _ = server.Write(welcome)
		}()
		Eventually(c.Ready, time.Second, 10*time.Millisecond).Should(BeTrue())

		ping, _ := wire.Encode(wire.Ping{})
		_, _ = server.Write(ping)

		pkt, err := readFrame(server)
		Expect(err).ToNot(HaveOccurred())
		Expect(pkt).To(Equal(wire.Pong{}))
	})

	It("forwards non-control packets to the downstream handler", func() {
		client, server := net.Pipe()
		d := funcDialer{fn: func() (net.Conn, error) { return client, nil }}

		c := conn.New(l, fake, log, newTestConfig(), d)
		received := make(chan interface{}, 1)
		c.SetDownstreamHandler(func(pkt interface{}) { received <- pkt })
		c.Start(ctx)

		go func() {
			welcome, _ := wire.Encode(&wire.Welcome{ServerVersion: 1, ProtocolVersion: 1})
			_, _ = server.Write(welcome)
			session, _ := wire.Encode(&verb.Session{Name: []byte("svc"), State: verb.SessionActive})
			_, _ = server.Write(session)
		}()
		Eventually(c.Ready, time.Second, 10*time.Millisecond).Should(BeTrue())

		Eventually(received, time.Second).Should(Receive())
	})

	It("fails and cools down when the server sends BYEBYE", func() {
		client, server := net.Pipe()
		d := funcDialer{fn: func() (net.Conn, error) { return client, nil }}

		c := conn.New(l, fake, log, newTestConfig(), d)
		c.Start(ctx)

		go func() {
			welcome, _ := wire.Encode(&wire.Welcome{ServerVersion: 1, ProtocolVersion: 1})
			_, _ = server.Write(welcome)
		}()
		Eventually(c.Ready, time.Second, 10*time.Millisecond).Should(BeTrue())

		bye, _ := wire.Encode(wire.ByeBye{})
		_, _ = server.Write(bye)

		Eventually(c.Ready, time.Second, 10*time.Millisecond).Should(BeFalse())
		Eventually(c.State, time.Second, 10*time.Millisecond).Should(Equal(conn.StateFailed))
	})

	It("transitions to Failed and retries after a dial error", func() {
		calls := 0
		client, _ := net.Pipe()
		d := funcDialer{fn: func() (net.Conn, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("connection refused")
			}
			return client, nil
		}}

		c := conn.New(l, fake, log, newTestConfig(), d)
		c.Start(ctx)

		Eventually(c.State, time.Second, 10*time.Millisecond).Should(Equal(conn.StateFailed))

		fake.Advance(5 * time.Second)

		Eventually(func() int { return calls }, time.Second, 10*time.Millisecond).Should(Equal(2))
	})

	It("accepts a client-id without affecting connection behavior", func() {
		client, server := net.Pipe()
		d := funcDialer{fn: func() (net.Conn, error) { return client, nil }}

		c := conn.New(l, fake, log, newTestConfig(), d)
		c.SetClientID("test-client")
		c.Start(ctx)

		go func() {
			frame, _ := wire.Encode(&wire.Welcome{ServerVersion: 1, ProtocolVersion: 1})
			_, _ = server.Write(frame)
		}()

		Eventually(c.Ready, time.Second, 10*time.Millisecond).Should(BeTrue())
	})

	It("fails after the welcome timeout elapses with no WELCOME", func() {
		client, _ := net.Pipe()
		d := funcDialer{fn: func() (net.Conn, error) { return client, nil }}

		c := conn.New(l, fake, log, newTestConfig(), d)
		c.Start(ctx)

		Eventually(c.State, time.Second, 10*time.Millisecond).Should(Equal(conn.StateWaitWelcome))

		fake.Advance(2 * time.Second)

		Eventually(c.State, time.Second, 10*time.Millisecond).Should(Equal(conn.StateFailed))
	})
})
