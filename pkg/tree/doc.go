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

// Package tree draws YANG tree diagrams as defined by RFC 8340:
//
//	module: example
//	  +--rw interfaces
//	  |  +--rw interface* [name]
//	  |     +--rw name    string
//	  |     +--rw mtu?    uint16 {mtu}?
//	  +--ro state
//	     +--ro uptime?   uint32
//
// The package knows nothing about how a schema is stored.  The caller passes
// a Schema, which walks the schema (Traversal), describes each node line
// (Reader) and prints keys and if-features (Printer).
//
// Lines are kept within Options.LineLength where possible.  A node line that
// is too long is broken in front of its if-features, then its type, then its
// keys, and the remainder is printed on continuation lines indented under
// the name.  A leafref target that would not fit even on a line of its own
// is printed as "leafref".  When nothing else helps the line is printed too
// long rather than not at all.
package tree
