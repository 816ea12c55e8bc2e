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

import (
	"context"
	"sync"
)

type bag struct {
	context.Context
	m sync.Map
}

func (b *bag) Get(key string) (interface{}, bool) {
	return b.m.Load(key)
}

func (b *bag) Set(key string, val interface{}) {
	if val == nil {
		b.m.Delete(key)
		return
	}
	b.m.Store(key, val)
}

func (b *bag) Delete(key string) {
	b.m.Delete(key)
}

func (b *bag) Walk(fct FuncWalk) {
	if fct == nil {
		return
	}
	b.m.Range(func(k, v interface{}) bool {
		return fct(k.(string), v)
	})
}

func (b *bag) Clone(parent context.Context) Bag {
	if parent == nil {
		parent = b.Context
	}
	n := &bag{Context: parent}
	b.m.Range(func(k, v interface{}) bool {
		n.m.Store(k, v)
		return true
	})
	return n
}
