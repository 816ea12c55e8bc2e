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

package logger

import "io"

// Logger is the structured logging surface used throughout the client: the
// connection state machine, the dispatcher and every handle log through a
// Logger field rather than fmt.Println or the stdlib log package.
type Logger interface {
	// SetLevel changes the minimal level that gets emitted.
	SetLevel(lvl Level)
	// GetLevel returns the minimal level currently emitted.
	GetLevel() Level

	// SetOutput redirects where formatted entries are written.
	SetOutput(w io.Writer)

	// WithFields returns a Logger that prepends field to every entry logged
	// through it, without mutating the receiver.
	WithFields(field Fields) Logger

	Debug(message string, field Fields)
	Info(message string, field Fields)
	Warning(message string, field Fields)
	Error(message string, err error, field Fields)
	Fatal(message string, err error, field Fields)
}

// New returns a Logger backed by a fresh logrus instance at level lvl,
// writing to w (os.Stderr if w is nil).
func New(lvl Level, w io.Writer) Logger {
	return newLogrusLogger(lvl, w, nil)
}
