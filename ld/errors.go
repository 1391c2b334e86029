// Copyright 2015-2017 Piprate Limited
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

package ld

import (
	"fmt"
)

// Kind classifies why an operation on the tree failed. There are exactly
// three: everything else is a programmer error (nil pointer, bad option),
// not a document-processing failure.
type Kind string

const (
	// ParseKind covers malformed textual input: invalid UTF-8, JSON syntax
	// errors, unexpected control characters, or the document nesting too
	// deep to process safely.
	ParseKind Kind = "parse error"

	// SyntaxKind covers a structural violation of the document model
	// during expansion or compaction: duplicate reserved keys, a reserved
	// key holding the wrong shape of value, a list nested directly inside
	// another list, or extra keys alongside @value/@list/@set.
	SyntaxKind Kind = "syntax error"

	// ProcessKind covers context-evaluation failure: a cycle among prefix
	// references, or a local context entry that requests a remote context
	// (unsupported by this processor; see spec.md §7).
	ProcessKind Kind = "context processing error"
)

// Error is returned by every operation in this package. It carries the
// offending node (or term, or path) alongside a human-readable message so
// callers can build their own diagnostics.
type Error struct {
	Kind    Kind
	Message string
	Node    interface{}
}

func (e *Error) Error() string {
	if e.Node != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Node)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// newError builds an *Error of the given kind. node may be nil when there
// is nothing more specific than the message to report.
func newError(kind Kind, message string, node interface{}) *Error {
	return &Error{Kind: kind, Message: message, Node: node}
}
