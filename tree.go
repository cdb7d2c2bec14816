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

package main

import (
	"fmt"
	"io"

	"github.com/openconfig/goyang/pkg/yang"
	"github.com/openconfig/yangtree/pkg/tree"
	"github.com/openconfig/yangtree/pkg/yangentry"
	"github.com/pborman/getopt"
)

var (
	treeLineLength      int
	treeDepth           int
	treeGroupings       bool
	treeNoLeafrefTarget bool
	treePath            string
)

func init() {
	flags := getopt.New()
	register(&formatter{
		name:  "tree",
		f:     doTree,
		help:  "display in the RFC 8340 tree format",
		flags: flags,
	})
	configure(flags.IntVarLong(&treeLineLength, "tree_line_length", 0, "keep lines within N columns, 0 for no limit", "N"),
		func(c *config) {
			if c.TreeLineLength != nil {
				treeLineLength = *c.TreeLineLength
			}
		})
	configure(flags.IntVarLong(&treeDepth, "tree_depth", 0, "print at most N levels, 0 for all", "N"),
		func(c *config) {
			if c.TreeDepth != nil {
				treeDepth = *c.TreeDepth
			}
		})
	configure(flags.BoolVarLong(&treeGroupings, "tree_groupings", 0, "also print the groupings of each module"),
		func(c *config) {
			if c.TreeGroupings != nil {
				treeGroupings = *c.TreeGroupings
			}
		})
	configure(flags.BoolVarLong(&treeNoLeafrefTarget, "tree_no_leafref_target", 0, "print leafref instead of the leafref target path"),
		func(c *config) {
			if c.TreeNoLeafrefTarget != nil {
				treeNoLeafrefTarget = *c.TreeNoLeafrefTarget
			}
		})
	configure(flags.StringVarLong(&treePath, "tree_path", 0, "print only the subtree at schema node PATH", "PATH"),
		func(c *config) {
			if c.TreePath != nil {
				treePath = *c.TreePath
			}
		})
}

func treeOptions() tree.Options {
	opts := tree.Options{LineLength: treeLineLength, Depth: treeDepth}
	if treeGroupings {
		opts.Flags |= tree.Groupings
	}
	if treeNoLeafrefTarget {
		opts.Flags |= tree.NoLeafrefTarget
	}
	return opts
}

// doTree writes the diagram of each of entries to w, separated by blank
// lines.  With --tree_path only the named subtree of each module is written;
// a module without that node is an error but the others are still written.
func doTree(w io.Writer, entries []*yang.Entry) []error {
	opts := treeOptions()
	var errs []error
	for i, e := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return append(errs, err)
			}
		}
		s := yangentry.NewSchema(e)
		if treePath == "" {
			if err := tree.Render(w, s, opts); err != nil {
				return append(errs, err)
			}
			continue
		}
		c, err := s.Find(treePath)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := tree.RenderSubtree(w, s, c, opts); err != nil {
			return append(errs, err)
		}
	}
	return errs
}
