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

package eventloop_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/nxtcp/clock"
	"github.com/nabbar/nxtcp/eventloop"
)

var _ = Describe("Loop", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
	})

	AfterEach(func() {
		cancel()
	})

	It("runs posted work on the loop goroutine", func() {
		l := eventloop.New(clock.New())
		done := make(chan struct{})

		go func() { _ = l.Run(ctx) }()

		l.Post(func() { close(done) })

		Eventually(done, time.Second).Should(BeClosed())
	})

	It("fires a timer once the clock reaches its deadline", func() {
		fake := clock.NewFake(time.Unix(0, 0))
		l := eventloop.New(fake)
		fired := make(chan struct{})

		go func() { _ = l.Run(ctx) }()

		l.AfterFunc(2*time.Second, func() { close(fired) })

		Consistently(fired, 50*time.Millisecond).ShouldNot(BeClosed())

		fake.Advance(2 * time.Second)
		Eventually(fired, time.Second).Should(BeClosed())
	})

	It("fires timers in deadline order regardless of registration order", func() {
		fake := clock.NewFake(time.Unix(0, 0))
		l := eventloop.New(fake)

		order := make(chan int, 2)
		l.AfterFunc(5*time.Second, func() { order <- 2 })
		l.AfterFunc(1*time.Second, func() { order <- 1 })

		go func() { _ = l.Run(ctx) }()

		fake.Advance(10 * time.Second)

		Eventually(order, time.Second).Should(Receive(Equal(1)))
		Eventually(order, time.Second).Should(Receive(Equal(2)))
	})

	It("does not invoke a callback whose timer was stopped before firing", func() {
		fake := clock.NewFake(time.Unix(0, 0))
		l := eventloop.New(fake)
		fired := make(chan struct{})

		go func() { _ = l.Run(ctx) }()

		timer := l.AfterFunc(time.Second, func() { close(fired) })
		Expect(timer.Stop()).To(BeTrue())
		Expect(timer.Stop()).To(BeFalse())

		fake.Advance(5 * time.Second)
		Consistently(fired, 50*time.Millisecond).ShouldNot(BeClosed())
	})

	It("returns from Run when Shutdown is called", func() {
		l := eventloop.New(clock.New())
		done := make(chan error, 1)

		go func() { done <- l.Run(ctx) }()

		l.Shutdown()

		Eventually(done, time.Second).Should(Receive(BeNil()))
	})

	It("returns the context error when ctx is canceled", func() {
		l := eventloop.New(clock.New())
		done := make(chan error, 1)

		go func() { done <- l.Run(ctx) }()

		cancel()

		Eventually(done, time.Second).Should(Receive(MatchError(context.Canceled)))
	})
})
