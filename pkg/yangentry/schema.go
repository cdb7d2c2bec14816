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

package yangentry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/openconfig/goyang/pkg/yang"
	"github.com/openconfig/yangtree/pkg/tree"
)

// A Schema presents a compiled module to package tree.
//
// goyang keeps the children of an entry in a map, so they are drawn in
// alphabetical order, except that the keys of a list come first, in key
// order.
type Schema struct {
	module    *yang.Entry
	ms        *yang.Modules
	submodule bool
	prefix    string
	namespace string
	augments  []*yang.Entry
	groupings []*yang.Entry
}

var _ tree.Schema = (*Schema)(nil)

// NewSchema returns the Schema of the module or submodule entry e, as
// returned by a Loader.
func NewSchema(e *yang.Entry) *Schema {
	s := &Schema{module: e}
	if ns := e.Namespace(); ns != nil {
		s.namespace = ns.Name
	}
	m, ok := e.Node.(*yang.Module)
	if !ok {
		return s
	}
	s.ms = e.Modules()
	s.submodule = m.Kind() == "submodule"
	s.prefix = modulePrefix(m)
	for _, a := range m.Augment {
		if external(a.Name, s.prefix) {
			s.augments = append(s.augments, yang.ToEntry(a))
		}
	}
	for _, g := range m.Grouping {
		s.groupings = append(s.groupings, yang.ToEntry(g))
	}
	sort.Slice(s.groupings, func(i, j int) bool { return s.groupings[i].Name < s.groupings[j].Name })
	return s
}

func modulePrefix(m *yang.Module) string {
	switch {
	case m.Prefix != nil:
		return m.Prefix.Name
	case m.BelongsTo != nil && m.BelongsTo.Prefix != nil:
		return m.BelongsTo.Prefix.Name
	}
	return ""
}

// external reports whether the augment target path starts in a module other
// than the one with prefix.  Augments of the module's own nodes are drawn in
// place in the data tree.
func external(path, prefix string) bool {
	first := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(first, '/'); i >= 0 {
		first = first[:i]
	}
	i := strings.IndexByte(first, ':')
	return i >= 0 && first[:i] != prefix
}

// The cursors handed to package tree.
type (
	rootCursor struct{}

	// entryCursor is the i'th entry of a list of siblings.
	entryCursor struct {
		sibs []*yang.Entry
		i    int
	}

	// sectionCursor is the i'th augment or grouping section.
	sectionCursor struct {
		kind tree.Keyword
		list []*yang.Entry
		i    int
	}
)

func (c entryCursor) entry() *yang.Entry { return c.sibs[c.i] }

func (s *Schema) first(sibs []*yang.Entry) (tree.Node, tree.Cursor) {
	if len(sibs) == 0 {
		return tree.Node{}, nil
	}
	return s.node(sibs[0]), entryCursor{sibs: sibs}
}

func (s *Schema) nextSection(kind tree.Keyword, list []*yang.Entry, c tree.Cursor) (tree.KeywordStmt, tree.Cursor) {
	i := 0
	if sc, ok := c.(sectionCursor); ok && sc.kind == kind {
		i = sc.i + 1
	}
	if i >= len(list) {
		return tree.KeywordStmt{}, nil
	}
	return tree.KeywordStmt{Keyword: kind, Arg: list[i].Name}, sectionCursor{kind: kind, list: list, i: i}
}

// Root implements tree.Reader.
func (s *Schema) Root() tree.Cursor { return rootCursor{} }

// ModuleName implements tree.Reader.
func (s *Schema) ModuleName(tree.Cursor) tree.KeywordStmt {
	if s.submodule {
		return tree.KeywordStmt{Keyword: tree.KeywordSubmodule, Arg: s.module.Name}
	}
	return tree.KeywordStmt{Keyword: tree.KeywordModule, Arg: s.module.Name}
}

// Node implements tree.Reader.
func (s *Schema) Node(c tree.Cursor) tree.Node {
	if ec, ok := c.(entryCursor); ok {
		return s.node(ec.entry())
	}
	return tree.Node{}
}

// NextSibling implements tree.Traversal.
func (s *Schema) NextSibling(c tree.Cursor) (tree.Node, tree.Cursor) {
	ec, ok := c.(entryCursor)
	if !ok || ec.i+1 >= len(ec.sibs) {
		return tree.Node{}, nil
	}
	ec.i++
	return s.node(ec.entry()), ec
}

// NextChild implements tree.Traversal.
func (s *Schema) NextChild(c tree.Cursor) (tree.Node, tree.Cursor) {
	switch c := c.(type) {
	case rootCursor:
		return s.first(filter(children(s.module), isData))
	case entryCursor:
		return s.first(children(c.entry()))
	case sectionCursor:
		return s.first(children(c.list[c.i]))
	}
	return tree.Node{}, nil
}

// NextAugment implements tree.Traversal.
func (s *Schema) NextAugment(c tree.Cursor) (tree.KeywordStmt, tree.Cursor) {
	return s.nextSection(tree.KeywordAugment, s.augments, c)
}

// NextGrouping implements tree.Traversal.
func (s *Schema) NextGrouping(c tree.Cursor) (tree.KeywordStmt, tree.Cursor) {
	return s.nextSection(tree.KeywordGrouping, s.groupings, c)
}

// NextYangData implements tree.Traversal.  goyang does not compile the
// yang-data extension, so there never are any.
func (s *Schema) NextYangData(tree.Cursor) (tree.KeywordStmt, tree.Cursor) {
	return tree.KeywordStmt{}, nil
}

// RPCs implements tree.Traversal.
func (s *Schema) RPCs(tree.Cursor) (tree.Node, tree.Cursor) {
	return s.first(filter(children(s.module), isRPC))
}

// Notifications implements tree.Traversal.
func (s *Schema) Notifications(tree.Cursor) (tree.Node, tree.Cursor) {
	return s.first(filter(children(s.module), isNotification))
}

// PrintKeys implements tree.Printer.
func (s *Schema) PrintKeys(c tree.Cursor, out tree.Sink) {
	if ec, ok := c.(entryCursor); ok {
		out.Emit(strings.Join(strings.Fields(ec.entry().Key), " "))
	}
}

// PrintFeatureNames implements tree.Printer.
func (s *Schema) PrintFeatureNames(c tree.Cursor, out tree.Sink) {
	if ec, ok := c.(entryCursor); ok {
		out.Emit(strings.Join(ifFeatures(ec.entry()), ","))
	}
}

// Find returns the cursor of the node at path, a sequence of node names
// separated by "/".  Prefixes on the names are ignored.  rpc and action
// input and output are found under the names "input" and "output".
func (s *Schema) Find(path string) (tree.Cursor, error) {
	e := s.module
	for _, name := range strings.Split(strings.Trim(path, "/"), "/") {
		if i := strings.IndexByte(name, ':'); i >= 0 {
			name = name[i+1:]
		}
		var next *yang.Entry
		for _, c := range children(e) {
			if c.Name == name {
				next = c
				break
			}
		}
		if next == nil {
			return nil, fmt.Errorf("%s: no node %q under %s", s.module.Name, name, e.Path())
		}
		e = next
	}
	return entryCursor{sibs: []*yang.Entry{e}}, nil
}

// children returns the children of e in the order they are drawn.
func children(e *yang.Entry) []*yang.Entry {
	if e.RPC != nil {
		var params []*yang.Entry
		if e.RPC.Input != nil {
			params = append(params, e.RPC.Input)
		}
		if e.RPC.Output != nil {
			params = append(params, e.RPC.Output)
		}
		return params
	}

	var out []*yang.Entry
	keys := map[string]bool{}
	if e.IsList() {
		for _, k := range strings.Fields(e.Key) {
			if c := e.Dir[k]; c != nil && !keys[k] {
				out = append(out, c)
				keys[k] = true
			}
		}
	}
	var names []string
	for n := range e.Dir {
		if !keys[n] {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	for _, n := range names {
		out = append(out, e.Dir[n])
	}
	return out
}

func filter(es []*yang.Entry, keep func(*yang.Entry) bool) []*yang.Entry {
	var out []*yang.Entry
	for _, e := range es {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func isRPC(e *yang.Entry) bool          { return e.RPC != nil }
func isNotification(e *yang.Entry) bool { return e.Kind == yang.NotificationEntry }
func isData(e *yang.Entry) bool         { return !isRPC(e) && !isNotification(e) }

// node returns the node line of e.
func (s *Schema) node(e *yang.Entry) tree.Node {
	return tree.Node{
		Status:        status(e),
		Access:        access(e),
		Name:          tree.Name{Kind: nameKind(e), Prefix: s.prefixOf(e), Text: e.Name},
		HasKeys:       e.IsList() && strings.TrimSpace(e.Key) != "",
		Type:          typeOf(e),
		HasIfFeatures: len(ifFeatures(e)) > 0,
	}
}

// prefixOf returns the prefix printed in front of the name of e, which is
// empty unless e was added to the module by another module.
func (s *Schema) prefixOf(e *yang.Entry) string {
	ns := e.Namespace()
	if ns == nil || ns.Name == "" || ns.Name == s.namespace || s.ms == nil {
		return ""
	}
	m, err := s.ms.FindModuleByNamespace(ns.Name)
	if err != nil {
		return ""
	}
	return modulePrefix(m)
}

// stmt holds the statements of a node that goyang does not carry over into
// its Entry.
type stmt struct {
	status    *yang.Value
	mandatory *yang.Value
	presence  *yang.Value
	features  []*yang.Value
	typ       *yang.Type
}

func statements(e *yang.Entry) stmt {
	switch n := e.Node.(type) {
	case *yang.Leaf:
		return stmt{status: n.Status, mandatory: n.Mandatory, features: n.IfFeature, typ: n.Type}
	case *yang.LeafList:
		return stmt{status: n.Status, features: n.IfFeature, typ: n.Type}
	case *yang.Container:
		return stmt{status: n.Status, presence: n.Presence, features: n.IfFeature}
	case *yang.List:
		return stmt{status: n.Status, features: n.IfFeature}
	case *yang.Choice:
		return stmt{status: n.Status, mandatory: n.Mandatory, features: n.IfFeature}
	case *yang.Case:
		return stmt{status: n.Status, features: n.IfFeature}
	case *yang.AnyData:
		return stmt{status: n.Status, mandatory: n.Mandatory, features: n.IfFeature}
	case *yang.AnyXML:
		return stmt{status: n.Status, mandatory: n.Mandatory, features: n.IfFeature}
	case *yang.RPC:
		return stmt{status: n.Status, features: n.IfFeature}
	case *yang.Action:
		return stmt{status: n.Status, features: n.IfFeature}
	case *yang.Notification:
		return stmt{status: n.Status, features: n.IfFeature}
	}
	return stmt{}
}

func isTrue(v *yang.Value) bool { return v != nil && v.Name == "true" }

func status(e *yang.Entry) tree.Status {
	st := statements(e).status
	if st == nil {
		return tree.StatusCurrent
	}
	switch st.Name {
	case "deprecated":
		return tree.StatusDeprecated
	case "obsolete":
		return tree.StatusObsolete
	}
	return tree.StatusCurrent
}

func ifFeatures(e *yang.Entry) []string {
	var names []string
	for _, f := range statements(e).features {
		names = append(names, f.Name)
	}
	return names
}

// access returns the flags of e: what kind of node it is or, for data
// nodes, whether it is configuration.
func access(e *yang.Entry) tree.Access {
	switch {
	case e.RPC != nil:
		return tree.AccessRPC
	case e.Kind == yang.NotificationEntry:
		return tree.AccessNotif
	case e.IsCase():
		return tree.AccessNone
	}
	for p := e; p != nil; p = p.Parent {
		switch {
		case p.Kind == yang.InputEntry:
			return tree.AccessRPCInput
		case p.Kind == yang.OutputEntry, p.Kind == yang.NotificationEntry:
			return tree.AccessRO
		case p.Parent == nil:
			if _, ok := p.Node.(*yang.Grouping); ok {
				return tree.AccessNone
			}
		}
	}
	if e.ReadOnly() {
		return tree.AccessRO
	}
	return tree.AccessRW
}

func isKey(e *yang.Entry) bool {
	p := e.Parent
	if p == nil || !p.IsList() {
		return false
	}
	for _, k := range strings.Fields(p.Key) {
		if k == e.Name {
			return true
		}
	}
	return false
}

func nameKind(e *yang.Entry) tree.NameKind {
	st := statements(e)
	switch {
	case e.IsCase():
		return tree.NameCase
	case e.IsChoice():
		if isTrue(st.mandatory) {
			return tree.NameChoice
		}
		return tree.NameOptionalChoice
	case e.IsList(), e.IsLeafList():
		return tree.NameList
	case st.presence != nil:
		return tree.NamePresence
	case e.IsLeaf(), e.Kind == yang.AnyDataEntry, e.Kind == yang.AnyXMLEntry:
		if isTrue(st.mandatory) || isKey(e) {
			return tree.NamePlain
		}
		return tree.NameOptional
	}
	return tree.NamePlain
}

// typeOf returns the type of e as written in the module.  A leafref written
// as such shows its target path.
func typeOf(e *yang.Entry) tree.Type {
	switch e.Kind {
	case yang.AnyDataEntry:
		return tree.Type{Kind: tree.TypeName, Text: "<anydata>"}
	case yang.AnyXMLEntry:
		return tree.Type{Kind: tree.TypeName, Text: "<anyxml>"}
	}
	if e.Type == nil {
		return tree.Type{}
	}
	name := e.Type.Name
	if t := statements(e).typ; t != nil {
		name = t.Name
	}
	if name == "leafref" && e.Type.Path != "" {
		return tree.Type{Kind: tree.TypeLeafrefTarget, Text: e.Type.Path}
	}
	return tree.Type{Kind: tree.TypeName, Text: name}
}
