/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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
 */

package duration

import (
	"math"
	"time"
)

// TruncateMicroseconds returns the result of rounding d toward zero to a multiple of a microsecond.
// If d is an exact multiple of a microsecond, it returns d unchanged.
// For example, 1.5µs becomes 1µs and -1.5µs becomes -1µs.
func (d Duration) TruncateMicroseconds() Duration {
	return Duration(time.Duration(d.Time().Microseconds()) * time.Microsecond)
}

// TruncateMilliseconds returns the result of rounding d toward zero to a multiple of a millisecond.
// If d is an exact multiple of a millisecond, it returns d unchanged.
// For example, 1.5ms becomes 1ms and -1.5ms becomes -1ms.
func (d Duration) TruncateMilliseconds() Duration {
	return Duration(time.Duration(d.Time().Milliseconds()) * time.Millisecond)
}

// TruncateSeconds returns the result of rounding d down (toward negative infinity) to a multiple of a second.
// If d is an exact multiple of a second, it returns d unchanged.
// For example, 1.5s becomes 1s and -1.5s becomes -2s.
func (d Duration) TruncateSeconds() Duration {
	return Duration(time.Duration(math.Floor(d.Time().Seconds())) * time.Second)
}

// TruncateMinutes returns the result of rounding d down (toward negative infinity) to a multiple of a minute.
// If d is an exact multiple of a minute, it returns d unchanged.
// For example, 1.5m becomes 1m and -5.5m becomes -6m.
func (d Duration) TruncateMinutes() Duration {
	return Duration(time.Duration(math.Floor(d.Time().Minutes())) * time.Minute)
}

// TruncateHours returns the result of rounding d down (toward negative infinity) to a multiple of an hour.
// If d is an exact multiple of an hour, it returns d unchanged.
// For example, 1.5h becomes 1h and -1.5h becomes -2h.
func (d Duration) TruncateHours() Duration {
	return Duration(time.Duration(math.Floor(d.Time().Hours())) * time.Hour)
}

// TruncateDays returns the result of rounding d down (toward negative infinity) to a multiple of a day.
// If d is an exact multiple of a day, it returns d unchanged.
// For example, 1.5d becomes 1d and -1.5d becomes -2d.
func (d Duration) TruncateDays() Duration {
	return Duration(time.Duration(d.Days()) * 24 * time.Hour)
}
