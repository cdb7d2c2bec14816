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

import "io"

// A Cursor is a position in a schema.  It is created by a Schema and only
// ever handed back to it; this package never looks inside.
type Cursor interface{}

// A Traversal moves through a schema.  Each method returns the value found
// from c along with the cursor positioned on it.  When there is nothing to
// return, the empty Node or KeywordStmt is returned and the cursor is
// meaningless.
type Traversal interface {
	// NextSibling returns the sibling after the node at c.
	NextSibling(c Cursor) (Node, Cursor)
	// NextChild returns the first child of the node or section at c.
	NextChild(c Cursor) (Node, Cursor)
	// NextAugment returns the augment section after c, or the first one
	// when c is the root.
	NextAugment(c Cursor) (KeywordStmt, Cursor)
	// NextGrouping returns the grouping section after c, or the first
	// one when c is the root.
	NextGrouping(c Cursor) (KeywordStmt, Cursor)
	// NextYangData returns the yang-data section after c, or the first
	// one when c is the root.
	NextYangData(c Cursor) (KeywordStmt, Cursor)
	// RPCs returns the first rpc of the module at the root c.
	RPCs(c Cursor) (Node, Cursor)
	// Notifications returns the first notification of the module at the
	// root c.
	Notifications(c Cursor) (Node, Cursor)
}

// A Reader reads a schema without moving.
type Reader interface {
	// Root returns the cursor of the module itself.
	Root() Cursor
	// ModuleName returns the module or submodule header of the root c.
	ModuleName(c Cursor) KeywordStmt
	// Node returns the node at c.
	Node(c Cursor) Node
}

// A Printer prints the parts of a node line whose representation only the
// schema knows.  The renderer calls them only for nodes with HasKeys or
// HasIfFeatures set, and prints the surrounding brackets itself.
type Printer interface {
	// PrintKeys prints the keys of the list at c separated by blanks.
	PrintKeys(c Cursor, s Sink)
	// PrintFeatureNames prints the if-features of the node at c separated
	// by commas.
	PrintFeatureNames(c Cursor, s Sink)
}

// A Schema is everything the renderer needs from a schema.
type Schema interface {
	Traversal
	Reader
	Printer
}

// Flags toggle optional behavior of the renderer.
type Flags uint

const (
	// NoLeafrefTarget prints every leafref as "leafref" instead of
	// "-> path".
	NoLeafrefTarget = Flags(1 << iota)
	// Groupings adds a section for every grouping of the module, after
	// the notifications and before yang-data.  Without it groupings are
	// not drawn, as pyang and yanglint do by default.
	Groupings
)

// Options control the layout of a diagram.
type Options struct {
	// LineLength is the longest line, in bytes, the renderer tries to
	// keep to.  0 means no limit.
	LineLength int
	// Depth is the number of levels printed in each section.  Nodes with
	// children below the last printed level get a "..." line.  0 means
	// no limit.
	Depth int
	Flags Flags
}

// Render writes the diagram of the module in s to w.  The only error
// returned is one from w.
func Render(w io.Writer, s Schema, opts Options) error {
	out := NewWriter(w)
	d := &driver{
		r:     newRenderer(s, opts),
		s:     s,
		out:   out,
		depth: opts.Depth,
	}
	root := s.Root()
	d.header(root)
	d.children(root, NewWrapper(WrapperTop), 0)

	for ks, c := s.NextAugment(root); !ks.IsEmpty(); ks, c = s.NextAugment(c) {
		d.section(ks)
		d.children(c, NewWrapper(WrapperBody), 0)
	}
	if n, c := s.RPCs(root); !n.IsEmpty() {
		d.section(KeywordStmt{Keyword: KeywordRPCs})
		d.siblings(n, c, NewWrapper(WrapperBody), 0)
	}
	if n, c := s.Notifications(root); !n.IsEmpty() {
		d.section(KeywordStmt{Keyword: KeywordNotifications})
		d.siblings(n, c, NewWrapper(WrapperBody), 0)
	}
	if opts.Flags&Groupings != 0 {
		for ks, c := s.NextGrouping(root); !ks.IsEmpty(); ks, c = s.NextGrouping(c) {
			d.section(ks)
			d.children(c, NewWrapper(WrapperBody), 0)
		}
	}
	for ks, c := s.NextYangData(root); !ks.IsEmpty(); ks, c = s.NextYangData(c) {
		d.section(ks)
		d.children(c, NewWrapper(WrapperBody), 0)
	}
	return out.Err()
}

// RenderSubtree writes the module header of s followed by the subtree rooted
// at the node at c, which is drawn as if it were the only top level node.
func RenderSubtree(w io.Writer, s Schema, c Cursor, opts Options) error {
	out := NewWriter(w)
	d := &driver{
		r:     newRenderer(s, opts),
		s:     s,
		out:   out,
		depth: opts.Depth,
	}
	d.header(s.Root())
	if n := s.Node(c); !n.IsEmpty() {
		d.siblings(n, c, NewWrapper(WrapperTop), 0)
	}
	return out.Err()
}

// A driver walks a schema and prints every node it finds.
type driver struct {
	r     *renderer
	s     Schema
	out   Sink
	depth int // levels to print, 0 for all
}

// A sibling is a node together with the cursor it was found at.
type sibling struct {
	node   Node
	cursor Cursor
}

func (d *driver) header(root Cursor) {
	d.r.printKeywordStmt(d.out, d.s.ModuleName(root))
	d.out.Emit("\n")
}

// section prints the header of a section, separated from what came before
// by a blank line.
func (d *driver) section(ks KeywordStmt) {
	d.out.Emit("\n")
	d.r.printKeywordStmt(d.out, ks)
	d.out.Emit("\n")
}

// children prints the children of the node or section at c behind wr.
// level is the number of levels already printed in this section.
func (d *driver) children(c Cursor, wr Wrapper, level int) {
	n, cc := d.s.NextChild(c)
	if n.IsEmpty() {
		return
	}
	d.siblings(n, cc, wr, level)
}

// siblings prints n, found at c, and all of the siblings that follow it,
// each with its subtree.
func (d *driver) siblings(n Node, c Cursor, wr Wrapper, level int) {
	var sibs []sibling
	for !n.IsEmpty() {
		sibs = append(sibs, sibling{node: n, cursor: c})
		n, c = d.s.NextSibling(c)
	}
	column := d.r.typeColumn(sibs, wr)
	for i, sb := range sibs {
		nwr := wr
		if i < len(sibs)-1 {
			nwr = wr.SetMark()
		}
		d.r.printEntireNode(d.out, sb.cursor, sb.node, nwr, unifiedIndent(sb.node, column))
		d.out.Emit("\n")

		if d.depth > 0 && level+1 >= d.depth {
			if child, _ := d.s.NextChild(sb.cursor); !child.IsEmpty() {
				nwr.Advance().Render(d.out)
				d.out.Emit("...\n")
			}
			continue
		}
		d.children(sb.cursor, nwr.Advance(), level+1)
	}
}
