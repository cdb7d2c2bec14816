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

const (
	indentLineBegin     = 2 // margin in front of a top level line
	indentBtwSiblings   = 2 // blanks after each sibling bar column
	indentLongLineBreak = 2 // extra indent of continuation lines
)

// A WrapperKind selects the left margin of a Wrapper.
type WrapperKind int

const (
	// WrapperTop is used for the data tree of a module.
	WrapperTop = WrapperKind(iota)
	// WrapperBody is used inside augment, rpcs, notifications, grouping
	// and yang-data sections, which are indented twice as far.
	WrapperBody
)

// A Wrapper describes the columns in front of a node line.  Each column
// below Depth is either a sibling bar ("|") or blank.  A Wrapper is a value;
// SetMark and Advance return modified copies.
//
// The marks are a growable bit vector so there is no limit on the depth.
type Wrapper struct {
	kind  WrapperKind
	depth int
	marks []uint64 // never written after creation
}

// NewWrapper returns a Wrapper of kind k at depth 0 with no marks.
func NewWrapper(k WrapperKind) Wrapper {
	return Wrapper{kind: k}
}

// Kind returns the kind of w.
func (w Wrapper) Kind() WrapperKind { return w.kind }

// Depth returns the number of columns w renders.
func (w Wrapper) Depth() int { return w.depth }

// SetMark returns w with a bar in the column at w.Depth().  The column
// becomes visible once w is advanced.
func (w Wrapper) SetMark() Wrapper {
	word, bit := w.depth/64, uint(w.depth%64)
	size := len(w.marks)
	if word >= size {
		size = word + 1
	}
	marks := make([]uint64, size)
	copy(marks, w.marks)
	marks[word] |= 1 << bit
	w.marks = marks
	return w
}

// Advance returns w one column deeper.
func (w Wrapper) Advance() Wrapper {
	w.depth++
	return w
}

// Marked reports whether the column at level shows a bar.
func (w Wrapper) Marked(level int) bool {
	if level < 0 {
		return false
	}
	word := level / 64
	if word >= len(w.marks) {
		return false
	}
	return w.marks[word]&(1<<uint(level%64)) != 0
}

// Equal reports whether w and o have the same kind, depth and marks.
func (w Wrapper) Equal(o Wrapper) bool {
	if w.kind != o.kind || w.depth != o.depth {
		return false
	}
	n := len(w.marks)
	if len(o.marks) > n {
		n = len(o.marks)
	}
	for i := 0; i < n; i++ {
		if w.word(i) != o.word(i) {
			return false
		}
	}
	return true
}

func (w Wrapper) word(i int) uint64 {
	if i < len(w.marks) {
		return w.marks[i]
	}
	return 0
}

// margin returns the number of blanks in front of the first column.
func (w Wrapper) margin() int {
	if w.kind == WrapperBody {
		return 2 * indentLineBegin
	}
	return indentLineBegin
}

// Width returns the number of bytes Render emits.
func (w Wrapper) Width() int {
	return w.margin() + w.depth*(1+indentBtwSiblings)
}

// Render emits the margin and the sibling columns of w to s.
func (w Wrapper) Render(s Sink) {
	s.Emit(spaces(w.margin()))
	gap := spaces(indentBtwSiblings)
	for i := 0; i < w.depth; i++ {
		if w.Marked(i) {
			s.Emit("|", gap)
		} else {
			s.Emit(" ", gap)
		}
	}
}
