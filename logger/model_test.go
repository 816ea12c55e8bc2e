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

package logger_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/nxtcp/logger"
)

var _ = Describe("Logger", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = &bytes.Buffer{}
	})

	It("writes entries at or above the configured level", func() {
		l := logger.New(logger.InfoLevel, buf)
		l.Info("hello", nil)
		Expect(buf.String()).To(ContainSubstring("hello"))
	})

	It("suppresses entries below the configured level", func() {
		l := logger.New(logger.WarnLevel, buf)
		l.Info("should not appear", nil)
		Expect(buf.String()).To(BeEmpty())
	})

	It("includes fields bound through WithFields", func() {
		l := logger.New(logger.InfoLevel, buf).WithFields(logger.NewFields().Add("verb", "SUBSCRIBE"))
		l.Info("dispatched", nil)
		Expect(buf.String()).To(ContainSubstring("verb=SUBSCRIBE"))
	})

	It("appends the error message for Error", func() {
		l := logger.New(logger.InfoLevel, buf)
		l.Error("dial failed", errBoom, nil)
		Expect(buf.String()).To(ContainSubstring("boom"))
	})
})

var errBoom = &boomError{}

type boomError struct{}

func (e *boomError) Error() string { return "boom" }
