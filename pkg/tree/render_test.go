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
	"strings"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestPrintEntireNode(t *testing.T) {
	top := NewWrapper(WrapperTop)
	longPath := "/" + strings.Repeat("a", 199)

	for _, tt := range []struct {
		name       string
		n          *fakeNode
		wr         Wrapper
		lineLength int
		flags      Flags
		want       string
	}{{
		name:       "leaf fits",
		n:          leaf(AccessRW, NamePlain, "host-name", "string"),
		wr:         top,
		lineLength: 80,
		want:       "  +--rw host-name    string",
	}, {
		name:       "type moved",
		n:          leaf(AccessRW, NamePlain, "host-name", "string"),
		wr:         top,
		lineLength: 20,
		want:       "  +--rw host-name\n          string",
	}, {
		name:       "type moved with more siblings",
		n:          leaf(AccessRW, NamePlain, "host-name", "string"),
		wr:         top.SetMark(),
		lineLength: 20,
		want:       "  +--rw host-name\n  |       string",
	}, {
		name:       "list",
		n:          list(AccessRW, "interface", []string{"name"}),
		wr:         top,
		lineLength: 80,
		want:       "  +--rw interface* [name]",
	}, {
		name:       "no limit",
		n:          leaf(AccessRO, NameOptional, strings.Repeat("n", 100), "string", "f"),
		wr:         top,
		lineLength: 0,
		want:       "  +--ro " + strings.Repeat("n", 100) + "?   string {f}?",
	}, {
		name:       "leafref target too long",
		n:          leafref(AccessRW, NamePlain, "ref", longPath),
		wr:         top,
		lineLength: 80,
		want:       "  +--rw ref    leafref",
	}, {
		name:       "leafref target",
		n:          leafref(AccessRW, NamePlain, "ref", "/a/b"),
		wr:         top,
		lineLength: 80,
		want:       "  +--rw ref    -> /a/b",
	}, {
		name:       "leafref target not wanted",
		n:          leafref(AccessRW, NamePlain, "ref", "/a/b"),
		wr:         top,
		lineLength: 80,
		flags:      NoLeafrefTarget,
		want:       "  +--rw ref    leafref",
	}, {
		name:       "if-features moved",
		n:          withFeatures(list(AccessRW, "interfaces-list", []string{"name", "type"}), "feat-a"),
		wr:         top,
		lineLength: 40,
		want:       "  +--rw interfaces-list* [name type]\n          {feat-a}?",
	}, {
		name:       "keys moved",
		n:          withFeatures(list(AccessRW, "interfaces-list", []string{"name", "type"}), "feat-a"),
		wr:         top,
		lineLength: 30,
		want:       "  +--rw interfaces-list*\n          [name type]\n          {feat-a}?",
	}, {
		name:       "name too long",
		n:          leaf(AccessRW, NamePlain, "an-extremely-long-leaf-name", "string"),
		wr:         top,
		lineLength: 20,
		want:       "  +--rw an-extremely-long-leaf-name\n          string",
	}, {
		name:       "name too long without body",
		n:          dir(AccessRW, NamePlain, "an-extremely-long-container-name"),
		wr:         top,
		lineLength: 20,
		want:       "  +--rw an-extremely-long-container-name",
	}, {
		name:       "case",
		n:          dir(AccessNone, NameCase, "ethernet"),
		wr:         top.Advance(),
		lineLength: 80,
		want:       "     +--:(ethernet)",
	}, {
		name:       "choice",
		n:          withFeatures(dir(AccessRW, NameOptionalChoice, "medium"), "wired"),
		wr:         top,
		lineLength: 80,
		want:       "  +--rw (medium)? {wired}?",
	}, {
		name: "deprecated body node",
		n: &fakeNode{node: Node{
			Status: StatusDeprecated,
			Access: AccessRO,
			Name:   Name{Kind: NamePresence, Prefix: "ex", Text: "old"},
		}},
		wr:         NewWrapper(WrapperBody),
		lineLength: 80,
		want:       "    x--ro ex:old!",
	}, {
		name:       "rpc input",
		n:          leaf(AccessRPCInput, NameOptional, "delay", "uint32"),
		wr:         NewWrapper(WrapperBody).Advance().SetMark().Advance(),
		lineLength: 80,
		want:       "       |  +---w delay?   uint32",
	}} {
		t.Run(tt.name, func(t *testing.T) {
			got := renderNode(tt.n, tt.wr, tt.lineLength, tt.flags)
			if diff := pretty.Compare(got, tt.want); diff != "" {
				t.Errorf("(-got, +want):\n%s", diff)
			}
		})
	}
}

// TestPrintUnifiedNode tests that a node keeps the type column of its
// siblings when only its if-features have to move to the next line.
func TestPrintUnifiedNode(t *testing.T) {
	fn := leaf(AccessRW, NameOptional, "mtu", "uint16", "mtu")
	for _, tt := range []struct {
		name       string
		lineLength int
		want       string
	}{{
		name:       "fits",
		lineLength: 80,
		want:       "  +--rw mtu?    uint16 {mtu}?",
	}, {
		name:       "if-features moved",
		lineLength: 24,
		want:       "  +--rw mtu?    uint16\n          {mtu}?",
	}, {
		name:       "type only fits with the default gap",
		lineLength: 21,
		want:       "  +--rw mtu?   uint16\n          {mtu}?",
	}} {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			r := newRenderer(&fakeSchema{}, Options{LineLength: tt.lineLength})
			c := nodeCursor{sibs: []*fakeNode{fn}}
			r.printEntireNode(NewWriter(&b), c, fn.node, NewWrapper(WrapperTop), unifiedIndent(fn.node, 8))
			if diff := pretty.Compare(b.String(), tt.want); diff != "" {
				t.Errorf("(-got, +want):\n%s", diff)
			}
		})
	}
}

func TestPrintKeywordStmt(t *testing.T) {
	for _, tt := range []struct {
		name       string
		ks         KeywordStmt
		lineLength int
		want       string
	}{{
		name: "empty",
		want: "",
	}, {
		name: "module",
		ks:   KeywordStmt{Keyword: KeywordModule, Arg: "example"},
		want: "module: example",
	}, {
		name:       "long module names are not split",
		ks:         KeywordStmt{Keyword: KeywordSubmodule, Arg: "a-very-long-submodule-name"},
		lineLength: 10,
		want:       "submodule: a-very-long-submodule-name",
	}, {
		name: "rpcs",
		ks:   KeywordStmt{Keyword: KeywordRPCs},
		want: "  rpcs:",
	}, {
		name: "grouping",
		ks:   KeywordStmt{Keyword: KeywordGrouping, Arg: "endpoint"},
		want: "  grouping endpoint:",
	}, {
		name: "yang-data",
		ks:   KeywordStmt{Keyword: KeywordYangData, Arg: "errors"},
		want: "  yang-data errors:",
	}, {
		name:       "augment fits",
		ks:         KeywordStmt{Keyword: KeywordAugment, Arg: "/a:x/a:y"},
		lineLength: 20,
		want:       "  augment /a:x/a:y:",
	}, {
		name:       "augment split",
		ks:         KeywordStmt{Keyword: KeywordAugment, Arg: "/a:x/a:y/a:zzzz"},
		lineLength: 20,
		want:       "  augment /a:x/a:y\n            /a:zzzz:",
	}, {
		name:       "augment split twice",
		ks:         KeywordStmt{Keyword: KeywordAugment, Arg: "/a:x/a:y/a:zzzz/a:wwww"},
		lineLength: 20,
		want:       "  augment /a:x/a:y\n            /a:zzzz\n            /a:wwww:",
	}, {
		name:       "first piece too long",
		ks:         KeywordStmt{Keyword: KeywordAugment, Arg: "/aaaa/bbbb"},
		lineLength: 5,
		want:       "  augment /aaaa\n            /bbbb:",
	}} {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			r := newRenderer(&fakeSchema{}, Options{LineLength: tt.lineLength})
			r.printKeywordStmt(NewWriter(&b), tt.ks)
			if diff := pretty.Compare(b.String(), tt.want); diff != "" {
				t.Errorf("(-got, +want):\n%s", diff)
			}

			var cnt Counter
			r.printKeywordStmt(&cnt, tt.ks)
			if cnt.Len() != b.Len() {
				t.Errorf("counted %d bytes, printed %d", cnt.Len(), b.Len())
			}
		})
	}
}

func TestNextSubpath(t *testing.T) {
	for _, tt := range []struct {
		in, want string
	}{
		{"/a", "/a"},
		{"/a/b", "/a"},
		{"/a:x/a:y", "/a:x"},
		{"a/b", "a"},
	} {
		if got := nextSubpath(tt.in); got != tt.want {
			t.Errorf("nextSubpath(%q) got %q, want %q", tt.in, got, tt.want)
		}
	}
}
