// Copyright 2020 Google Inc.
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

// Package yangentry loads YANG modules with goyang and presents the compiled
// yang.Entry trees to package tree.
package yangentry

import (
	"fmt"
	"sort"

	"github.com/openconfig/goyang/pkg/yang"
	"github.com/rs/zerolog"
)

// A Loader reads YANG modules and compiles them into yang.Entry trees.
// The zero Loader searches only the current directory and logs nothing.
type Loader struct {
	// Path lists directories that are searched, recursively, for modules
	// named on the command line and for imports and includes.
	Path []string
	// Options are handed to the goyang parser.
	Options yang.Options
	// Log receives progress messages.  The zero value discards them.
	Log zerolog.Logger
}

// NewLoader returns a Loader that searches path and logs to log.
func NewLoader(path []string, log zerolog.Logger) *Loader {
	return &Loader{Path: path, Log: log}
}

// Load reads each of names, which are either module names or .yang file
// paths, and compiles them.  It returns an entry for each module or
// submodule that was named, sorted by name, and not for the modules they
// import.  If any name could not be read, or the modules do not compile, the
// errors are returned instead.
func (l *Loader) Load(names ...string) ([]*yang.Entry, []error) {
	ms := l.modules()

	var errs []error
	var read []*yang.Module
	for _, name := range names {
		if name == "" {
			continue
		}
		before := known(ms)
		if err := ms.Read(name); err != nil {
			errs = append(errs, err)
			continue
		}
		added := newModules(ms, before)
		l.Log.Debug().Str("source", name).Int("modules", len(added)).Msg("read")
		read = append(read, added...)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return l.process(ms, read)
}

// LoadData compiles the module text in data, as read from name, which is
// only used in error messages.
func (l *Loader) LoadData(name, data string) ([]*yang.Entry, []error) {
	ms := l.modules()
	before := known(ms)
	if err := ms.Parse(data, name); err != nil {
		return nil, []error{err}
	}
	return l.process(ms, newModules(ms, before))
}

func (l *Loader) modules() *yang.Modules {
	ms := yang.NewModules()
	ms.ParseOptions = l.Options
	for _, p := range l.Path {
		ms.AddPath(fmt.Sprintf("%s/...", p))
	}
	return ms
}

func (l *Loader) process(ms *yang.Modules, read []*yang.Module) ([]*yang.Entry, []error) {
	if errs := ms.Process(); len(errs) != 0 {
		l.Log.Debug().Int("errors", len(errs)).Msg("process failed")
		return nil, errs
	}

	sort.Slice(read, func(i, j int) bool { return read[i].Name < read[j].Name })
	var entries []*yang.Entry
	for _, m := range read {
		e := yang.ToEntry(m)
		if errs := e.GetErrors(); len(errs) != 0 {
			return nil, errs
		}
		l.Log.Debug().Str("module", m.Name).Str("kind", m.Kind()).Msg("compiled")
		entries = append(entries, e)
	}
	return entries, nil
}

// known returns the set of modules and submodules ms holds.  ms lists a
// module under more than one name, the set holds each one once.
func known(ms *yang.Modules) map[*yang.Module]bool {
	seen := map[*yang.Module]bool{}
	for _, m := range ms.Modules {
		seen[m] = true
	}
	for _, m := range ms.SubModules {
		seen[m] = true
	}
	return seen
}

// newModules returns the modules in ms that are not in before.
func newModules(ms *yang.Modules, before map[*yang.Module]bool) []*yang.Module {
	var added []*yang.Module
	for m := range known(ms) {
		if !before[m] {
			added = append(added, m)
		}
	}
	return added
}
