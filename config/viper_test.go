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
	"github.com/spf13/viper"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/nxtcp/config"
)

var _ = Describe("RegisterDefaults / FromViper", func() {
	var v *viper.Viper

	BeforeEach(func() {
		v = viper.New()
		config.RegisterDefaults(v)
	})

	It("fails when nxtcp.uri is missing", func() {
		_, err := config.FromViper(v)
		Expect(err).To(HaveOccurred())
	})

	It("fails on a nil viper instance", func() {
		_, err := config.FromViper(nil)
		Expect(err).To(HaveOccurred())
	})

	It("builds a Config from the uri and leaves defaults in place", func() {
		v.Set(config.KeyURI, "nxtcp://broker.local:4000")

		c, err := config.FromViper(v)
		Expect(err).ToNot(HaveOccurred())
		Expect(c.Host).To(Equal("broker.local"))
		Expect(c.Port).To(Equal(uint16(4000)))
		Expect(c.ConnectTimeout.String()).To(Equal("3s"))
		Expect(c.CoolDown).To(HaveLen(8))
	})

	It("lets an explicit connect_timeout override the default", func() {
		v.Set(config.KeyURI, "nxtcp://broker.local:4000")
		v.Set(config.KeyConnectTimeout, "7s")

		c, err := config.FromViper(v)
		Expect(err).ToNot(HaveOccurred())
		Expect(c.ConnectTimeout.String()).To(Equal("7s"))
	})

	It("lets an explicit cool_down override the default schedule", func() {
		v.Set(config.KeyURI, "nxtcp://broker.local:4000")
		v.Set(config.KeyCoolDown, []string{"1s", "2s"})

		c, err := config.FromViper(v)
		Expect(err).ToNot(HaveOccurred())
		Expect(c.CoolDown).To(HaveLen(2))
		Expect(c.CoolDown[0].String()).To(Equal("1s"))
		Expect(c.CoolDown[1].String()).To(Equal("2s"))
	})

	It("rejects a uri that fails validation", func() {
		v.Set(config.KeyURI, "nxtcp://broker.local")

		_, err := config.FromViper(v)
		Expect(err).To(HaveOccurred())
	})
})
