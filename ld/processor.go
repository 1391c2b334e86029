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

// Processor is the facade over the three operations this package
// implements: context processing, expansion, and compaction (spec.md §4).
// It exists so an embedding application has one object to hold Options
// against, the way the teacher's JsonLdProcessor does for its much larger
// algorithm set.
type Processor struct {
	Options *Options
}

// NewProcessor returns a Processor using opts, or NewOptions("") if opts
// is nil.
func NewProcessor(opts *Options) *Processor {
	if opts == nil {
		opts = NewOptions("")
	}
	return &Processor{Options: opts}
}

// Parse decodes raw document bytes into the generic tree (spec.md §6).
func (p *Processor) Parse(raw []byte) (interface{}, error) {
	return Parse(raw, p.Options)
}

// ProcessContext folds localContext into base (or a fresh empty context
// rooted at p.Options.Base if base is nil), per spec.md §4.A.
func (p *Processor) ProcessContext(base *Context, localContext interface{}) (*Context, error) {
	if base == nil {
		base = NewContext(p.Options.base())
	}
	return base.Process(localContext)
}

// Expand expands node under ctx (spec.md §4.B). A nil ctx is treated as an
// empty active context rooted at p.Options.Base.
func (p *Processor) Expand(node interface{}, ctx *Context) (interface{}, error) {
	if ctx == nil {
		ctx = NewContext(p.Options.base())
	}
	return Expand(node, ctx, "")
}

// Compact compacts node under ctx (spec.md §4.C). A nil ctx is treated as
// an empty active context rooted at p.Options.Base.
func (p *Processor) Compact(node interface{}, ctx *Context) (interface{}, error) {
	if ctx == nil {
		ctx = NewContext(p.Options.base())
	}
	return Compact(node, ctx, "", p.Options.Optimize, p.Options.CompactArrays)
}
