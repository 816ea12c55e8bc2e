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

package ctxutil

import "context"

// FuncWalk is called once per attribute during Walk. Returning false stops
// the walk early.
type FuncWalk func(key string, val interface{}) bool

// Bag is a context.Context carrying a mutable set of named attributes.
// Reads and writes are safe for concurrent use.
type Bag interface {
	context.Context

	// Get returns the value stored under key, and whether it was found.
	Get(key string) (val interface{}, ok bool)
	// Set stores val under key, overwriting any previous value; a nil val
	// removes key instead.
	Set(key string, val interface{})
	// Delete removes key, if present.
	Delete(key string)
	// Walk iterates over every attribute until fct returns false.
	Walk(fct FuncWalk)

	// Clone derives a new Bag from parent, copying the current attributes
	// into it. If parent is nil, the clone keeps this Bag's own context.
	Clone(parent context.Context) Bag
}

// New returns a Bag derived from parent. If parent is nil, it defaults to
// context.Background.
func New(parent context.Context) Bag {
	if parent == nil {
		parent = context.Background()
	}
	return &bag{Context: parent}
}
