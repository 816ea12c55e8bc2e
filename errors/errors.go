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

package errors

import (
	"fmt"
	"runtime"
)

type ers struct {
	c CodeError
	m string
	p error
	t runtime.Frame
}

// New creates an Error with the given code and message and no parent.
func New(code CodeError, message string) Error {
	return &ers{c: code, m: message, t: getFrame()}
}

// Newf creates an Error with the given code and a fmt.Sprintf-formatted message.
func Newf(code CodeError, pattern string, args ...any) Error {
	return &ers{c: code, m: fmt.Sprintf(pattern, args...), t: getFrame()}
}

// Wrap creates an Error with the given code and message, wrapping parent as
// the cause. If parent is nil this is equivalent to New.
func Wrap(code CodeError, message string, parent error) Error {
	return &ers{c: code, m: message, p: parent, t: getFrame()}
}

func (e *ers) Error() string {
	msg := e.m
	if msg == "" {
		msg = e.c.String()
	}
	if e.p != nil {
		return fmt.Sprintf("[%d] %s: %s", e.c.Uint16(), msg, e.p.Error())
	}
	return fmt.Sprintf("[%d] %s", e.c.Uint16(), msg)
}

func (e *ers) Code() CodeError {
	return e.c
}

func (e *ers) IsCode(code CodeError) bool {
	return e.c == code
}

func (e *ers) HasCode(code CodeError) bool {
	if e.c == code {
		return true
	}
	if p := Get(e.p); p != nil {
		return p.HasCode(code)
	}
	return false
}

func (e *ers) Parent() error {
	return e.p
}

func (e *ers) Unwrap() error {
	return e.p
}

func (e *ers) Trace() string {
	return formatFrame(e.t)
}
