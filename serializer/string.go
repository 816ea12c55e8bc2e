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

package serializer

import "fmt"

// String is the default Serializer: a Go string encodes to its UTF-8 bytes
// verbatim, a []byte is passed through unchanged, nil encodes to nil, and
// any other value encodes via fmt.Sprintf("%v", ...). Decode always
// returns a Go string built from the raw bytes.
type String struct{}

func (String) Encode(obj interface{}) ([]byte, error) {
	if obj == nil {
		return nil, nil
	}
	if s, ok := obj.(string); ok {
		return []byte(s), nil
	}
	if b, ok := obj.([]byte); ok {
		return b, nil
	}
	return []byte(fmt.Sprintf("%v", obj)), nil
}

// Decode never fails: string(raw) in Go preserves any byte sequence,
// including invalid UTF-8, without panicking or substituting characters.
func (String) Decode(raw []byte) (interface{}, error) {
	return string(raw), nil
}
