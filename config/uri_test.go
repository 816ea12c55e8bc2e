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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/nxtcp/config"
)

var _ = Describe("ParseURI", func() {
	It("parses a valid nxtcp:// uri with every default applied", func() {
		c, err := config.ParseURI("nxtcp://broker.local:4000")
		Expect(err).ToNot(HaveOccurred())
		Expect(c.Host).To(Equal("broker.local"))
		Expect(c.Port).To(Equal(uint16(4000)))
		Expect(c.ConnectTimeout.String()).To(Equal("3s"))
		Expect(c.WelcomeTimeout.String()).To(Equal("2s"))
		Expect(c.CoolDown).To(HaveLen(8))
	})

	It("rejects a non-nxtcp scheme", func() {
		_, err := config.ParseURI("http://broker.local:4000")
		Expect(err).To(HaveOccurred())
	})

	It("rejects a missing host", func() {
		_, err := config.ParseURI("nxtcp://:4000")
		Expect(err).To(HaveOccurred())
	})

	It("rejects a missing port", func() {
		_, err := config.ParseURI("nxtcp://broker.local")
		Expect(err).To(HaveOccurred())
	})

	It("rejects an unparsable uri", func() {
		_, err := config.ParseURI("://broker.local:4000")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Config.Validate", func() {
	It("rejects a zero-value config", func() {
		Expect((&config.Config{}).Validate()).To(HaveOccurred())
	})

	It("rejects a config with an empty cool-down schedule", func() {
		c := config.Default()
		c.Host = "broker.local"
		c.Port = 4000
		c.CoolDown = nil
		Expect(c.Validate()).To(HaveOccurred())
	})

	It("accepts a fully populated config", func() {
		c, err := config.ParseURI("nxtcp://broker.local:4000")
		Expect(err).ToNot(HaveOccurred())
		Expect(c.Validate()).ToNot(HaveOccurred())
	})
})
