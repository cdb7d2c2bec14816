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

import "strings"

// fakeNode is a node of an in-memory schema used by the tests.
type fakeNode struct {
	node     Node
	keys     []string
	features []string
	children []*fakeNode
}

type fakeSection struct {
	ks    KeywordStmt
	nodes []*fakeNode
}

// fakeSchema implements Schema over fakeNodes.
type fakeSchema struct {
	module    KeywordStmt
	data      []*fakeNode
	augments  []fakeSection
	rpcs      []*fakeNode
	notifs    []*fakeNode
	groupings []fakeSection
	yangData  []fakeSection
}

type rootCursor struct{}

type nodeCursor struct {
	sibs []*fakeNode
	i    int
}

func (c nodeCursor) fake() *fakeNode { return c.sibs[c.i] }

type sectionCursor struct {
	list []fakeSection
	i    int
}

func first(sibs []*fakeNode) (Node, Cursor) {
	if len(sibs) == 0 {
		return Node{}, nil
	}
	return sibs[0].node, nodeCursor{sibs: sibs}
}

func nextSection(list []fakeSection, c Cursor) (KeywordStmt, Cursor) {
	i := 0
	if sc, ok := c.(sectionCursor); ok {
		i = sc.i + 1
	}
	if i >= len(list) {
		return KeywordStmt{}, nil
	}
	return list[i].ks, sectionCursor{list: list, i: i}
}

func (f *fakeSchema) Root() Cursor { return rootCursor{} }

func (f *fakeSchema) ModuleName(Cursor) KeywordStmt { return f.module }

func (f *fakeSchema) Node(c Cursor) Node {
	if nc, ok := c.(nodeCursor); ok {
		return nc.fake().node
	}
	return Node{}
}

func (f *fakeSchema) NextSibling(c Cursor) (Node, Cursor) {
	nc, ok := c.(nodeCursor)
	if !ok || nc.i+1 >= len(nc.sibs) {
		return Node{}, nil
	}
	nc.i++
	return nc.fake().node, nc
}

func (f *fakeSchema) NextChild(c Cursor) (Node, Cursor) {
	switch c := c.(type) {
	case rootCursor:
		return first(f.data)
	case nodeCursor:
		return first(c.fake().children)
	case sectionCursor:
		return first(c.list[c.i].nodes)
	}
	return Node{}, nil
}

func (f *fakeSchema) NextAugment(c Cursor) (KeywordStmt, Cursor) {
	return nextSection(f.augments, c)
}

func (f *fakeSchema) NextGrouping(c Cursor) (KeywordStmt, Cursor) {
	return nextSection(f.groupings, c)
}

func (f *fakeSchema) NextYangData(c Cursor) (KeywordStmt, Cursor) {
	return nextSection(f.yangData, c)
}

func (f *fakeSchema) RPCs(Cursor) (Node, Cursor) { return first(f.rpcs) }

func (f *fakeSchema) Notifications(Cursor) (Node, Cursor) { return first(f.notifs) }

func (f *fakeSchema) PrintKeys(c Cursor, s Sink) {
	s.Emit(strings.Join(c.(nodeCursor).fake().keys, " "))
}

func (f *fakeSchema) PrintFeatureNames(c Cursor, s Sink) {
	s.Emit(strings.Join(c.(nodeCursor).fake().features, ","))
}

// leaf returns a leaf with a named type.
func leaf(a Access, k NameKind, name, typ string, features ...string) *fakeNode {
	return &fakeNode{
		node: Node{
			Status:        StatusCurrent,
			Access:        a,
			Name:          Name{Kind: k, Text: name},
			Type:          Type{Kind: TypeName, Text: typ},
			HasIfFeatures: len(features) > 0,
		},
		features: features,
	}
}

// leafref returns a leaf whose type is a leafref to path.
func leafref(a Access, k NameKind, name, path string) *fakeNode {
	n := leaf(a, k, name, path)
	n.node.Type.Kind = TypeLeafrefTarget
	return n
}

// dir returns a node without a type, such as a container.
func dir(a Access, k NameKind, name string, children ...*fakeNode) *fakeNode {
	return &fakeNode{
		node: Node{
			Status: StatusCurrent,
			Access: a,
			Name:   Name{Kind: k, Text: name},
		},
		children: children,
	}
}

// list returns a list with keys.
func list(a Access, name string, keys []string, children ...*fakeNode) *fakeNode {
	n := dir(a, NameList, name, children...)
	n.keys = keys
	n.node.HasKeys = len(keys) > 0
	return n
}

// withFeatures returns n with the if-features set to features.
func withFeatures(n *fakeNode, features ...string) *fakeNode {
	n.features = features
	n.node.HasIfFeatures = len(features) > 0
	return n
}

// renderNode prints fn on its own behind wr and returns the text.
func renderNode(fn *fakeNode, wr Wrapper, lineLength int, flags Flags) string {
	var b strings.Builder
	r := newRenderer(&fakeSchema{}, Options{LineLength: lineLength, Flags: flags})
	r.printEntireNode(NewWriter(&b), nodeCursor{sibs: []*fakeNode{fn}}, fn.node, wr, DefaultIndent(fn.node))
	return b.String()
}

// exampleSchema returns the schema drawn in the package documentation,
// along with a few sections.
func exampleSchema() *fakeSchema {
	return &fakeSchema{
		module: KeywordStmt{Keyword: KeywordModule, Arg: "example"},
		data: []*fakeNode{
			dir(AccessRW, NamePlain, "interfaces",
				list(AccessRW, "interface", []string{"name"},
					leaf(AccessRW, NamePlain, "name", "string"),
					leaf(AccessRW, NameOptional, "mtu", "uint16", "mtu"),
				),
			),
			dir(AccessRO, NamePlain, "state",
				leaf(AccessRO, NameOptional, "uptime", "uint32"),
			),
		},
		augments: []fakeSection{{
			ks: KeywordStmt{Keyword: KeywordAugment, Arg: "/ex:interfaces/ex:interface"},
			nodes: []*fakeNode{
				leaf(AccessRW, NameOptional, "speed", "uint64"),
			},
		}},
		rpcs: []*fakeNode{
			dir(AccessRPC, NamePlain, "reset",
				dir(AccessRPCInput, NamePlain, "input",
					leaf(AccessRPCInput, NameOptional, "delay", "uint32"),
				),
				dir(AccessRO, NamePlain, "output"),
			),
		},
		notifs: []*fakeNode{
			dir(AccessNotif, NamePlain, "link-up",
				leafref(AccessRO, NamePlain, "if-name", "/ex:interfaces/ex:interface/ex:name"),
			),
		},
		groupings: []fakeSection{{
			ks: KeywordStmt{Keyword: KeywordGrouping, Arg: "endpoint"},
			nodes: []*fakeNode{
				leaf(AccessNone, NameOptional, "address", "inet:ip-address"),
			},
		}},
	}
}
