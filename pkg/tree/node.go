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

import "fmt"

// A Status is the status column of a node line.
type Status int

// The possible values of Status.
const (
	StatusNone = Status(iota)
	StatusCurrent
	StatusDeprecated
	StatusObsolete
)

// String returns the status as printed in a diagram.
func (s Status) String() string {
	switch s {
	case StatusCurrent:
		return "+"
	case StatusDeprecated:
		return "x"
	case StatusObsolete:
		return "o"
	default:
		return ""
	}
}

// An Access is the flags column of a node line.
type Access int

// The possible values of Access.
const (
	AccessNone = Access(iota)
	AccessRW                // configuration data
	AccessRO                // state data
	AccessRPCInput          // rpc, action or notification input
	AccessUsesUnexpanded    // uses of a grouping that is not expanded
	AccessRPC               // rpc or action
	AccessNotif             // notification
	AccessMountPoint        // schema mount point
)

var accessFlags = map[Access]string{
	AccessRW:             "rw",
	AccessRO:             "ro",
	AccessRPCInput:       "-w",
	AccessUsesUnexpanded: "-u",
	AccessRPC:            "-x",
	AccessNotif:          "-n",
	AccessMountPoint:     "mp",
}

// String returns the flags as printed in a diagram.
func (a Access) String() string {
	return accessFlags[a]
}

// A NameKind is the structural kind of a node.  It decides how the name is
// bracketed and which mark follows it.
type NameKind int

// The possible values of NameKind.
const (
	NamePlain          = NameKind(iota)
	NameCase                       // :(name)
	NameChoice                     // (name)
	NameOptionalChoice             // (name)?
	NameOptional                   // name?
	NamePresence                   // name!
	NameList                       // name*
	NameMountTop                   // name/
	NameMountParentRef             // name@
)

var nameMarks = map[NameKind]string{
	NameOptionalChoice: "?",
	NameOptional:       "?",
	NamePresence:       "!",
	NameList:           "*",
	NameMountTop:       "/",
	NameMountParentRef: "@",
}

// A Name is the name column of a node line.
type Name struct {
	Kind   NameKind
	Prefix string // module prefix, printed as prefix:text
	Text   string
}

// Mark returns the mark printed right after the name, if any.
func (n Name) Mark() string {
	return nameMarks[n.Kind]
}

// qualified returns the name with its prefix and brackets but no mark.
func (n Name) qualified() string {
	name := n.Text
	if n.Prefix != "" {
		name = n.Prefix + ":" + name
	}
	switch n.Kind {
	case NameCase:
		return ":(" + name + ")"
	case NameChoice, NameOptionalChoice:
		return "(" + name + ")"
	}
	return name
}

// String returns the name as printed in a diagram.
func (n Name) String() string {
	return n.qualified() + n.Mark()
}

// A TypeKind says how the type column of a node is printed.
type TypeKind int

// The possible values of TypeKind.
const (
	TypeNone          = TypeKind(iota)
	TypeName                      // a type name, such as string
	TypeLeafrefTarget             // -> path
	TypeLeafref                   // the bare word leafref
)

// A Type is the type column of a node line.
type Type struct {
	Kind TypeKind
	Text string // type name or leafref path
}

// String returns the type as printed in a diagram.
func (t Type) String() string {
	switch t.Kind {
	case TypeName:
		return t.Text
	case TypeLeafrefTarget:
		return "-> " + t.Text
	case TypeLeafref:
		return "leafref"
	default:
		return ""
	}
}

// A Node is one node line of a diagram:
//
//	<status>--<flags> <name><opts> <type> <if-features>
//
// Keys and if-features are printed by the Printer of the schema, so Node
// only records whether they are present.  The zero Node is the empty node
// returned by a Traversal that has nothing more to visit.
type Node struct {
	Status        Status
	Access        Access
	Name          Name
	HasKeys       bool
	Type          Type
	HasIfFeatures bool
}

// IsEmpty reports whether n is the empty node.
func (n Node) IsEmpty() bool {
	return n == Node{}
}

// bodyIsEmpty reports whether n has nothing to print after its name.
func (n Node) bodyIsEmpty() bool {
	return !n.HasKeys && n.Type.Kind == TypeNone && !n.HasIfFeatures
}

// upToName returns n without the fields that follow its name.
func (n Node) upToName() Node {
	n.HasKeys = false
	n.Type = Type{}
	n.HasIfFeatures = false
	return n
}

// continuationWidth returns the number of blanks printed in place of the
// flags and name on a continuation line of n, not counting the wrapper.
// Continuation lines start two columns past the start of the name text.
func (n Node) continuationWidth() int {
	w := len(n.Access.String())
	switch n.Name.Kind {
	case NameCase:
		w += len(":(")
	case NameChoice, NameOptionalChoice:
		w += len(" (")
	default:
		w += len(" ")
	}
	return w + indentLongLineBreak
}

// A Keyword is the keyword of a section header.
type Keyword int

// The possible values of Keyword.
const (
	KeywordNone = Keyword(iota)
	KeywordModule
	KeywordSubmodule
	KeywordAugment
	KeywordRPCs
	KeywordNotifications
	KeywordGrouping
	KeywordYangData
)

var keywordNames = map[Keyword]string{
	KeywordModule:        "module",
	KeywordSubmodule:     "submodule",
	KeywordAugment:       "augment",
	KeywordRPCs:          "rpcs",
	KeywordNotifications: "notifications",
	KeywordGrouping:      "grouping",
	KeywordYangData:      "yang-data",
}

func (k Keyword) String() string {
	if s := keywordNames[k]; s != "" {
		return s
	}
	return fmt.Sprintf("unknown-keyword-%d", k)
}

// A Scope says where a section header is printed.
type Scope int

// The possible values of Scope.
const (
	ScopeTop  = Scope(iota) // module: name
	ScopeBody               //   augment /path:
)

// A KeywordStmt is a section header such as "module: name" or
// "  augment /a:b/a:c:".  The zero KeywordStmt is empty.
type KeywordStmt struct {
	Keyword Keyword
	Arg     string // module name, augment target path, grouping name, ...
}

// IsEmpty reports whether ks is the empty statement.
func (ks KeywordStmt) IsEmpty() bool {
	return ks == KeywordStmt{}
}

// Scope returns the scope ks is printed in.
func (ks KeywordStmt) Scope() Scope {
	switch ks.Keyword {
	case KeywordModule, KeywordSubmodule:
		return ScopeTop
	}
	return ScopeBody
}
