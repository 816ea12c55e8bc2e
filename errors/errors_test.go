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

package errors_test

import (
	goerrors "errors"

	liberr "github.com/nabbar/nxtcp/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Error", func() {
	It("carries its code and message", func() {
		e := liberr.New(liberr.ErrNameInvalid, "name too long")
		Expect(e.Code()).To(Equal(liberr.ErrNameInvalid))
		Expect(e.IsCode(liberr.ErrNameInvalid)).To(BeTrue())
		Expect(e.Error()).To(ContainSubstring("name too long"))
	})

	It("chains a parent and exposes it through HasCode and Unwrap", func() {
		parent := liberr.New(liberr.ErrFrameTruncated, "short read")
		child := liberr.Wrap(liberr.ErrTransport, "connection failed", parent)

		Expect(child.HasCode(liberr.ErrTransport)).To(BeTrue())
		Expect(child.HasCode(liberr.ErrFrameTruncated)).To(BeTrue())
		Expect(child.IsCode(liberr.ErrFrameTruncated)).To(BeFalse())
		Expect(goerrors.Unwrap(error(child))).To(Equal(parent))
	})

	It("is discoverable through errors.As via liberr.Is/Get", func() {
		var err error = liberr.New(liberr.ErrDispatchMiss, "no handler")

		Expect(liberr.Is(err)).To(BeTrue())
		Expect(liberr.Get(err).Code()).To(Equal(liberr.ErrDispatchMiss))
		Expect(liberr.Is(goerrors.New("plain"))).To(BeFalse())
	})

	It("records a non-empty call-site trace", func() {
		e := liberr.New(liberr.ErrURIInvalid, "bad uri")
		Expect(e.Trace()).NotTo(BeEmpty())
	})
})
