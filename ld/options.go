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

// DefaultMaxDepth is the nesting limit parse enforces when Options.MaxDepth
// is left at its zero value.
const DefaultMaxDepth = 500

// Options configures the processor's construction parameters. Unlike the
// teacher's JsonLdOptions (which also carries framing, RDF-conversion and
// normalization knobs for algorithms this module doesn't implement), this
// only has the parameters the triad in spec.md §4 actually reads.
type Options struct {
	// Base is the base IRI used by ExpandIri when relative resolution is
	// permitted (spec.md §4.B, step 3). Resolution is plain string
	// concatenation against Base, matching the source's TODO (spec.md §9,
	// open question 3) rather than full IRI reference resolution.
	Base string

	// CompactArrays, when true, collapses single-element arrays down to
	// their lone element during compaction (spec.md §4.C Array case).
	CompactArrays bool

	// Optimize is the `optimize` flag threaded through Compact and
	// CompactIRI (spec.md §4.C). CompactIRI accepts it but no step of its
	// selection branches on it, so it currently has no effect on output.
	Optimize bool

	// MaxDepth bounds how deeply nested a parsed document tree may be
	// before parse returns ParseKind (spec.md §6, "max-depth exceeded").
	// Zero selects DefaultMaxDepth.
	MaxDepth int
}

// NewOptions returns Options with the documented defaults: arrays compact
// and the default depth guard in effect.
func NewOptions(base string) *Options {
	return &Options{
		Base:          base,
		CompactArrays: true,
		MaxDepth:      DefaultMaxDepth,
	}
}

// Copy creates a shallow copy of Options; every field is a value type, so
// this is also a deep copy.
func (opt *Options) Copy() *Options {
	cp := *opt
	return &cp
}

func (opt *Options) maxDepth() int {
	if opt == nil || opt.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return opt.MaxDepth
}

func (opt *Options) base() string {
	if opt == nil {
		return ""
	}
	return opt.Base
}
