/***********************************************************************************************************************
 *
 *   MIT License
 *
 *   Copyright (c) 2021 Nicolas JUHEL
 *
 *   Permission is hereby granted, free of charge, to any person obtaining a copy
 *   of this software and associated documentation files (the "Software"), to deal
 *   in the Software without restriction, including without limitation the rights
 *   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *   copies of the Software, and to permit persons to whom the Software is
 *   furnished to do so, subject to the following conditions:
 *
 *   The above copyright notice and this permission notice shall be included in all
 *   copies or substantial portions of the Software.
 *
 *   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *   SOFTWARE.
 *
 *
 **********************************************************************************************************************/

package mapcloser

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

type closer struct {
	ctx context.Context
	cnl context.CancelFunc
	don *atomic.Bool
	idx atomic.Uint64
	m   sync.Map
}

func (o *closer) nextIdx() uint64 {
	return o.idx.Add(1)
}

func (o *closer) Add(clo ...io.Closer) {
	if o == nil || o.don.Load() {
		return
	}

	for _, c := range clo {
		o.m.Store(o.nextIdx(), c)
	}
}

func (o *closer) Get() []io.Closer {
	res := make([]io.Closer, 0)

	if o == nil || o.don.Load() {
		return res
	}

	o.m.Range(func(_, val interface{}) bool {
		if c, k := val.(io.Closer); k && c != nil {
			res = append(res, c)
		}
		return true
	})

	return res
}

func (o *closer) Len() int {
	i := o.idx.Load()

	if i > math.MaxInt {
		return math.MaxInt
	}
	return int(i)
}

func (o *closer) Clean() {
	if o == nil || o.don.Load() {
		return
	}

	o.idx.Store(0)
	o.m.Range(func(key, _ interface{}) bool {
		o.m.Delete(key)
		return true
	})
}

func (o *closer) Clone() Closer {
	if o == nil || o.don.Load() {
		return nil
	}

	x, n := context.WithCancel(o.ctx)
	c := &closer{
		ctx: x,
		cnl: n,
		don: new(atomic.Bool),
	}
	c.idx.Store(o.idx.Load())

	o.m.Range(func(key, val interface{}) bool {
		c.m.Store(key, val)
		return true
	})

	go func() {
		for !c.don.Load() {
			select {
			case <-c.ctx.Done():
				_ = c.Close()
				return
			default:
				time.Sleep(100 * time.Millisecond)
			}
		}
	}()

	return c
}

func (o *closer) Close() error {
	if o == nil {
		return fmt.Errorf("mapcloser: not initialized")
	}

	if !o.don.CompareAndSwap(false, true) {
		return fmt.Errorf("mapcloser: already closed")
	}

	if o.cnl != nil {
		defer o.cnl()
	}

	var errs []string
	o.m.Range(func(_, val interface{}) bool {
		if c, k := val.(io.Closer); k && c != nil {
			if err := c.Close(); err != nil {
				errs = append(errs, err.Error())
			}
		}
		return true
	})

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, ", "))
	}

	return nil
}
