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

// Program yangtree reads YANG modules and writes their schema tree diagrams,
// as described in RFC 8340, to standard output.
//
// Usage: yangtree [--path DIR[,DIR...]] [--format FORMAT] [--config FILE] [FORMAT OPTIONS] [SOURCE] [...]
//
// SOURCE is either a module name or a .yang file.  Each named module is
// displayed, not the modules it imports.  With no SOURCE the module text is
// read from standard input.
//
// DIRs are searched, recursively, for the named modules and for their imports
// and includes.
//
// FORMAT, which defaults to "tree", selects the output:
//
//	tree     RFC 8340 tree diagrams
//	modules  the name and revision of each module
//
// A --config FILE holds YAML keyed by the long flag names.  Flags given on
// the command line override the file.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/openconfig/goyang/pkg/yang"
	"github.com/openconfig/yangtree/pkg/yangentry"
	"github.com/pborman/getopt"
	"github.com/rs/zerolog"
)

// A formatter writes the compiled modules in some format.
type formatter struct {
	name  string
	f     func(io.Writer, []*yang.Entry) []error
	help  string
	flags *getopt.Set
}

var formatters = map[string]*formatter{}

func register(f *formatter) {
	formatters[f.name] = f
}

// stop is replaced in tests.
var stop = os.Exit

// exitIfError writes errs to standard error and exits with an exit status of 1.
// If errs is empty then exitIfError does nothing and simply returns.
func exitIfError(errs []error) {
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}
		stop(1)
	}
}

func main() {
	var (
		format     = "tree"
		paths      []string
		configFile string
		debug      bool
		help       bool
	)

	formats := make([]string, 0, len(formatters))
	for k := range formatters {
		formats = append(formats, k)
	}
	sort.Strings(formats)

	configure(getopt.ListVarLong(&paths, "path", 0, "comma separated list of directories to add to search path", "DIR[,DIR...]"),
		func(c *config) {
			if len(c.Path) > 0 {
				paths = c.Path
			}
		})
	configure(getopt.StringVarLong(&format, "format", 0, "format to display: "+strings.Join(formats, ", "), "FORMAT"),
		func(c *config) {
			if c.Format != "" {
				format = c.Format
			}
		})
	configure(getopt.BoolVarLong(&debug, "debug", 0, "log progress to standard error"),
		func(c *config) { debug = c.Debug })
	getopt.StringVarLong(&configFile, "config", 0, "read settings from the YAML file FILE", "FILE")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("[FORMAT OPTIONS] [SOURCE] [...]")

	// Every formatter's options are accepted since the format may still
	// come from the config file.
	for _, fn := range formats {
		if f := formatters[fn]; f.flags != nil {
			f.flags.VisitAll(func(o getopt.Option) { getopt.AddOption(o) })
		}
	}

	if err := getopt.Getopt(func(getopt.Option) bool { return true }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		stop(1)
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		fmt.Fprintf(os.Stderr, `
SOURCE may be a module name or a .yang file.

Formats:
`)
		for _, fn := range formats {
			f := formatters[fn]
			fmt.Fprintf(os.Stderr, "    %s - %s\n", f.name, f.help)
		}
		stop(0)
	}

	if configFile != "" {
		c, err := loadConfig(configFile)
		if err != nil {
			exitIfError([]error{err})
		}
		c.apply(settings)
	}

	log := newLogger(os.Stderr, debug)

	f, ok := formatters[format]
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: invalid format.  Choices are %s\n", format, strings.Join(formats, ", "))
		stop(1)
	}
	log.Debug().Str("format", format).Strs("path", paths).Msg("starting")

	l := yangentry.NewLoader(paths, log)
	var entries []*yang.Entry
	var errs []error
	if files := getopt.Args(); len(files) > 0 {
		entries, errs = l.Load(files...)
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitIfError([]error{err})
		}
		entries, errs = l.LoadData("<STDIN>", string(data))
	}
	exitIfError(errs)
	exitIfError(f.f(os.Stdout, entries))
}

// newLogger returns a logger writing human readable lines to w.  Only
// warnings and errors are logged unless debug is set.
func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
