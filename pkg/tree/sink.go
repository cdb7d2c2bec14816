// Copyright 2025 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tree

import (
	"io"
	"strings"
)

// A Sink receives the text of a diagram.  Emit must behave as if frags were
// concatenated in order.
type Sink interface {
	Emit(frags ...string)
}

// A Writer is a Sink that writes to an io.Writer.  The first write error is
// kept and all later fragments are dropped.
type Writer struct {
	w   io.Writer
	n   int
	err error
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Emit writes frags to the underlying writer.
func (w *Writer) Emit(frags ...string) {
	for _, f := range frags {
		if w.err != nil {
			return
		}
		n, err := io.WriteString(w.w, f)
		w.n += n
		w.err = err
	}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.n }

// Err returns the first error encountered while writing, if any.
func (w *Writer) Err() error { return w.err }

// A Counter is a Sink that only counts the bytes it is given.  It is used to
// measure a line before deciding how to print it.
type Counter struct {
	n int
}

// Emit adds the length of frags to c.
func (c *Counter) Emit(frags ...string) {
	for _, f := range frags {
		c.n += len(f)
	}
}

// Len returns the number of bytes counted.
func (c *Counter) Len() int { return c.n }

// spaces returns a string of n blanks, or "" if n is not positive.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
