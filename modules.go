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
)

func init() {
	register(&formatter{
		name: "modules",
		f:    doModules,
		help: "list each module as kind name@revision",
	})
}

func doModules(w io.Writer, entries []*yang.Entry) []error {
	var errs []error
	for _, e := range entries {
		m, ok := e.Node.(*yang.Module)
		if !ok {
			errs = append(errs, fmt.Errorf("cannot convert entry %q to *yang.Module", e.Name))
			continue
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", m.Kind(), m.FullName()); err != nil {
			return append(errs, err)
		}
	}
	return errs
}
