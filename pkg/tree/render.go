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
	"math"
	"strings"
)

// A renderer prints node lines and section headers.  Every line is laid out
// by the same code whether it is measured (into a Counter) or printed.
type renderer struct {
	p          Printer
	lineLength int
	flags      Flags
}

func newRenderer(p Printer, opts Options) *renderer {
	r := &renderer{
		p:          p,
		lineLength: opts.LineLength,
		flags:      opts.Flags,
	}
	if r.lineLength <= 0 {
		r.lineLength = math.MaxInt32
	}
	return r
}

// printNode prints n with the gaps in ind.  A continuation line
// (ind.Mode == IndentDivided) gets blanks in place of the status, flags and
// name, so its fields start two columns past the start of the name.  Fields
// that n does not have are not printed and neither are the gaps in front of
// them.
func (r *renderer) printNode(s Sink, c Cursor, n Node, ind Indent) {
	if n.IsEmpty() {
		return
	}
	if ind.Mode == IndentDivided {
		s.Emit(spaces(n.continuationWidth()))
	} else {
		s.Emit(n.Status.String(), "--", n.Access.String())
		if n.Name.Kind != NameCase {
			s.Emit(" ")
		}
		s.Emit(n.Name.String())
	}
	if n.HasKeys {
		s.Emit(spaces(int(ind.NameOpts)), "[")
		r.p.PrintKeys(c, s)
		s.Emit("]")
	}
	if n.Type.Kind != TypeNone {
		s.Emit(spaces(int(ind.OptsType)), n.Type.String())
	}
	if n.HasIfFeatures {
		s.Emit(spaces(int(ind.TypeIfFeatures)), "{")
		r.p.PrintFeatureNames(c, s)
		s.Emit("}?")
	}
}

// printLine prints one physical line: the wrapper and then n.
func (r *renderer) printLine(s Sink, c Cursor, n Node, wr Wrapper, ind Indent) {
	wr.Render(s)
	r.printNode(s, c, n, ind)
}

// leafrefTooLong reports whether the leafref target of n does not fit even
// on a continuation line of its own.
func (r *renderer) leafrefTooLong(c Cursor, n Node, wr Wrapper) bool {
	only := n.upToName()
	only.Type = n.Type
	return !r.fits(c, only, wr.Advance(), Indent{Mode: IndentDivided})
}

// printEntireNode prints all lines of n, which is placed behind wr.  The
// mark of wr at its own depth says whether n has more siblings: it is
// invisible on the line of n but shows on the continuation lines.  ind is
// the indent n would like to have, either its default or the one unified
// with its siblings.  No trailing newline is printed.
func (r *renderer) printEntireNode(s Sink, c Cursor, n Node, wr Wrapper, ind Indent) {
	if n.Type.Kind == TypeLeafrefTarget && (r.flags&NoLeafrefTarget != 0 || r.leafrefTooLong(c, n, wr)) {
		n.Type = Type{Kind: TypeLeafref}
	}
	if ind.Mode == IndentUnified && !r.fits(c, n, wr, ind) {
		// The type keeps its column as long as it stays on the first line.
		if _, res := r.tryIndent(c, n, wr, ind); res.Mode != IndentDivided || res.OptsType == LineBreak {
			ind = DefaultIndent(n)
		}
	}
	head, res := r.tryIndent(c, n, wr, ind)
	switch res.Mode {
	case IndentNormal, IndentUnified:
		r.printLine(s, c, n, wr, res)
	case IndentDivided:
		line := res
		line.Mode = ind.Mode
		r.printLine(s, c, head, wr, line)
		s.Emit("\n")
		rest, rind := secondHalf(n, res)
		r.printDividedNode(s, c, rest, wr.Advance(), rind)
	case IndentFailed:
		// Even the name does not fit.  Print it anyway, this is the
		// only line allowed to be too long.
		r.printLine(s, c, n.upToName(), wr, DefaultIndent(n))
		if n.bodyIsEmpty() {
			return
		}
		s.Emit("\n")
		rest, rind := secondHalf(n, res)
		r.printDividedNode(s, c, rest, wr.Advance(), rind)
	}
}

// printDividedNode prints the continuation lines of n.  ind has mode
// IndentDivided and no breaks yet.
func (r *renderer) printDividedNode(s Sink, c Cursor, n Node, wr Wrapper, ind Indent) {
	head, res := r.tryIndent(c, n, wr, ind)
	// A Failed continuation still starts with a single field that cannot
	// be split any further; print it as it is.
	res.Mode = IndentDivided
	r.printLine(s, c, head, wr, res)
	if !res.hasBreak() {
		return
	}
	s.Emit("\n")
	rest, rind := secondHalf(n, res)
	r.printDividedNode(s, c, rest, wr, rind)
}

// printKeywordStmt prints the section header ks without a trailing
// newline.
func (r *renderer) printKeywordStmt(s Sink, ks KeywordStmt) {
	if ks.IsEmpty() {
		return
	}
	if ks.Scope() == ScopeTop {
		// Module names are never split.
		s.Emit(ks.Keyword.String(), ": ", ks.Arg)
		return
	}
	s.Emit(spaces(indentLineBegin), ks.Keyword.String())
	if ks.Arg != "" {
		s.Emit(" ")
		r.printKeywordArg(s, ks)
	}
	s.Emit(":")
}

// printKeywordArg prints the argument of a body section header, such as an
// augment target path.  The path is only split in front of a "/".  If even
// the first piece does not fit it is printed anyway.
func (r *renderer) printKeywordArg(s Sink, ks KeywordStmt) {
	initial := indentLineBegin + len(ks.Keyword.String()) + 1
	divided := initial + indentLongLineBreak

	broken, printed := false, false
	used := 0
	for rest := ks.Arg; rest != ""; {
		sub := nextSubpath(rest)
		rest = rest[len(sub):]
		width := len(sub)
		if rest == "" {
			width++ // the closing colon
		}
		used += width
		ind := initial
		if broken {
			ind = divided
		}
		if !printed || ind+used <= r.lineLength {
			s.Emit(sub)
			printed = true
			continue
		}
		s.Emit("\n", spaces(divided), sub)
		broken = true
		used = width
	}
}

// nextSubpath returns the leading piece of path, up to but not including the
// next "/" that is not its first byte.
func nextSubpath(path string) string {
	if i := strings.IndexByte(path[1:], '/'); i >= 0 {
		return path[:i+1]
	}
	return path
}
