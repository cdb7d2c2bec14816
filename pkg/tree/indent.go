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
	indentBeforeKeys       = 1
	indentBeforeType       = 4
	indentBeforeIfFeatures = 1
)

// A Gap is the number of blanks between two fields of a node line, or
// LineBreak.
type Gap int

// LineBreak is the Gap that moves the following fields to a new line.
const LineBreak = Gap(-1)

// An IndentMode is the outcome of fitting a node into the line length.
type IndentMode int

// The possible values of IndentMode.
const (
	// IndentNormal: the node fits on one line with default gaps.
	IndentNormal = IndentMode(iota)
	// IndentUnified: the node fits on one line with the type aligned to
	// its siblings.
	IndentUnified
	// IndentDivided: the node is split over several lines.  When printing,
	// it marks a continuation line, which has no flags and no name.
	IndentDivided
	// IndentFailed: no more breaks can be placed and the line still does
	// not fit.
	IndentFailed
)

func (m IndentMode) String() string {
	switch m {
	case IndentNormal:
		return "normal"
	case IndentUnified:
		return "unified"
	case IndentDivided:
		return "divided"
	case IndentFailed:
		return "failed"
	}
	return "unknown"
}

// An Indent holds the gaps between the fields of one node line:
//
//	<name> NameOpts <keys> OptsType <type> TypeIfFeatures <if-features>
//
// A gap in front of an absent field is 0.
type Indent struct {
	Mode           IndentMode
	NameOpts       Gap
	OptsType       Gap
	TypeIfFeatures Gap
}

// DefaultIndent returns the gaps n is printed with when nothing needs to be
// aligned or broken.
func DefaultIndent(n Node) Indent {
	var ind Indent
	if n.HasKeys {
		ind.NameOpts = indentBeforeKeys
	}
	if n.Type.Kind != TypeNone {
		ind.OptsType = indentBeforeType
		if n.Name.Mark() != "" {
			ind.OptsType -= Gap(len(n.Name.Mark()))
		}
	}
	if n.HasIfFeatures {
		ind.TypeIfFeatures = indentBeforeIfFeatures
	}
	return ind
}

// unifiedIndent returns the indent of n when the type of every sibling
// starts column bytes after the start of the name.  A column of 0, or one
// that does not leave n the default room in front of its type, gives the
// default indent.
func unifiedIndent(n Node, column int) Indent {
	ind := DefaultIndent(n)
	if column == 0 || n.Type.Kind == TypeNone || n.HasKeys {
		return ind
	}
	if column < len(n.Name.qualified())+indentBeforeType {
		return ind
	}
	ind.Mode = IndentUnified
	ind.OptsType = Gap(column - len(n.Name.String()))
	return ind
}

// hasBreak reports whether any gap of ind is a LineBreak.
func (ind Indent) hasBreak() bool {
	return ind.NameOpts == LineBreak || ind.OptsType == LineBreak || ind.TypeIfFeatures == LineBreak
}

// sameGaps reports whether ind and o have the same gaps.
func (ind Indent) sameGaps(o Indent) bool {
	return ind.NameOpts == o.NameOpts && ind.OptsType == o.OptsType && ind.TypeIfFeatures == o.TypeIfFeatures
}

// placeBreak turns the rightmost unbroken, non-zero gap of ind into a
// LineBreak.  The name is never separated from the flags in front of it, so
// the if-features go first, then the type, then the keys.  ok is false if no
// gap is left to break.
func (ind Indent) placeBreak() (out Indent, ok bool) {
	switch {
	case ind.TypeIfFeatures > 0:
		ind.TypeIfFeatures = LineBreak
	case ind.OptsType > 0:
		ind.OptsType = LineBreak
	case ind.NameOpts > 0:
		ind.NameOpts = LineBreak
	default:
		return ind, false
	}
	return ind, true
}

// firstHalf returns n without the fields after the first break of ind.
func firstHalf(n Node, ind Indent) Node {
	switch {
	case ind.NameOpts == LineBreak:
		n.HasKeys = false
		n.Type = Type{}
		n.HasIfFeatures = false
	case ind.OptsType == LineBreak:
		n.Type = Type{}
		n.HasIfFeatures = false
	case ind.TypeIfFeatures == LineBreak:
		n.HasIfFeatures = false
	}
	return n
}

// secondHalf returns n without the fields in front of the first break of
// ind, along with the indent for printing it as a continuation line.  The
// first remaining field gets a gap of 0 so no break can be placed in front
// of it.  Status, flags and name are kept: they decide the width of the
// continuation indent.
func secondHalf(n Node, ind Indent) (Node, Indent) {
	out := Indent{Mode: IndentDivided}
	switch {
	case ind.NameOpts == LineBreak:
		if n.Type.Kind != TypeNone {
			out.OptsType = indentBeforeType
		}
		if n.HasIfFeatures {
			out.TypeIfFeatures = indentBeforeIfFeatures
		}
	case ind.OptsType == LineBreak:
		n.HasKeys = false
		if n.HasIfFeatures {
			out.TypeIfFeatures = indentBeforeIfFeatures
		}
	case ind.TypeIfFeatures == LineBreak:
		n.HasKeys = false
		n.Type = Type{}
	}
	return n, out
}

// tryIndent fits n, printed behind wr with ind, into the line length of r.
// ind.Mode is the mode n is measured in: a continuation line when it is
// IndentDivided, a full node line otherwise.
//
// If n fits, n and ind are returned unchanged.  Otherwise breaks are placed
// from the right until the part of n in front of the first break fits.  That
// part is returned along with the broken indent in IndentDivided mode.  If
// every gap is broken and it still does not fit, the part in front of the
// first break is returned in IndentFailed mode.  Each round breaks one more
// gap, so there are at most three breaks.
func (r *renderer) tryIndent(c Cursor, n Node, wr Wrapper, ind Indent) (Node, Indent) {
	if r.fits(c, n, wr, ind) {
		return n, ind
	}
	brk, ok := ind.placeBreak()
	if !ok {
		ind.Mode = IndentFailed
		return n, ind
	}
	half, res := r.tryIndent(c, firstHalf(n, brk), wr, brk)
	if res.Mode != IndentFailed {
		res.Mode = IndentDivided
	}
	return half, res
}

// fits reports whether the line of n behind wr is no longer than the line
// length of r.
func (r *renderer) fits(c Cursor, n Node, wr Wrapper, ind Indent) bool {
	var cnt Counter
	r.printLine(&cnt, c, n, wr, ind)
	return cnt.Len() <= r.lineLength
}

// typeColumn returns where the type of each sibling starts, counted from the
// start of its name, so that all types line up.  Siblings that do not fit on
// a line with their default indent are left out.  0 means there is nothing
// to align.
func (r *renderer) typeColumn(sibs []sibling, wr Wrapper) int {
	column := 0
	for _, sb := range sibs {
		n := sb.node
		if n.Type.Kind == TypeNone || n.HasKeys {
			continue
		}
		if !r.fits(sb.cursor, n, wr, DefaultIndent(n)) {
			continue
		}
		if c := len(n.Name.qualified()) + indentBeforeType; c > column {
			column = c
		}
	}
	return column
}
