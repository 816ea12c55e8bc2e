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

package config_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/nxtcp/config"
)

var _ = Describe("Default", func() {
	It("fills every timing field and leaves host/port unset", func() {
		c := config.Default()
		Expect(c.Host).To(BeEmpty())
		Expect(c.Port).To(Equal(uint16(0)))
		Expect(c.ConnectTimeout.String()).To(Equal("3s"))
		Expect(c.WelcomeTimeout.String()).To(Equal("2s"))
		Expect(c.DefaultTTL.String()).To(Equal("5s"))
		Expect(c.DefaultRequestTimeout.String()).To(Equal("5s"))
		Expect(c.CoolDown).To(HaveLen(8))
	})

	It("never returns the same backing slice across calls", func() {
		a := config.Default()
		b := config.Default()
		a.CoolDown[0] = config.DefaultCoolDown()[0] * 2
		Expect(b.CoolDown[0]).ToNot(Equal(a.CoolDown[0]))
	})
})

var _ = Describe("DefaultCoolDown", func() {
	It("is the saturating 5,5,5,10,10,20,30,60 second schedule", func() {
		cd := config.DefaultCoolDown()
		Expect(cd).To(HaveLen(8))
		want := []time.Duration{5, 5, 5, 10, 10, 20, 30, 60}
		for i, w := range want {
			Expect(cd[i].Time()).To(Equal(w * time.Second))
		}
	})
})
