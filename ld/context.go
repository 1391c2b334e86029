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
	"strings"
)

// identifierType is the sentinel TermDefinition.Type value meaning "string
// values of properties bound to this term become identifier-objects"
// (spec.md §3 invariant 5).
const identifierType = "@id"

// TermDefinition is an active context entry (spec.md §3). Zero-value
// fields mean "unset": Type == "" has no datatype/identifier coercion,
// Language == "" with LanguageSet == false inherits the context default,
// Container == "" means no container coercion.
type TermDefinition struct {
	ID          string
	Type        string // identifierType, a datatype IRI, or "" (unset)
	Language    string
	LanguageSet bool // distinguishes "" (explicit empty language) from unset
	Container   string // "list", "set", or "" (unset)
}

// Context is the active context (spec.md §3): a mapping from term to
// TermDefinition, plus a default language. It is never mutated by
// Process: Process always builds on a clone, so a Context still
// referenced elsewhere stays valid (spec.md §3 invariant 6, §5).
type Context struct {
	terms       map[string]*TermDefinition
	language    string
	languageSet bool
	base        string
}

// NewContext returns an empty active context. base is used by ExpandIri
// when relative resolution is requested (spec.md §4.B step 3).
func NewContext(base string) *Context {
	return &Context{
		terms: make(map[string]*TermDefinition),
		base:  base,
	}
}

// Clone returns a deep copy of c.
func (c *Context) Clone() *Context {
	cp := &Context{
		terms:       make(map[string]*TermDefinition, len(c.terms)),
		language:    c.language,
		languageSet: c.languageSet,
		base:        c.base,
	}
	for term, def := range c.terms {
		d := *def
		cp.terms[term] = &d
	}
	return cp
}

// TermDefinition returns the definition for term, or nil if term is
// undefined in this context.
func (c *Context) TermDefinition(term string) *TermDefinition {
	return c.terms[term]
}

// DefaultLanguage returns the context's root default language and whether
// one is set.
func (c *Context) DefaultLanguage() (string, bool) {
	return c.language, c.languageSet
}

// Process folds localContext into c per spec.md §4.A, returning a new
// active context; c itself is never modified.
//
// localContext must be nil (reset), a map[string]interface{} (a set of
// term definitions), or a []interface{} of such, evaluated left to right.
// A string anywhere in that position names a remote context, which this
// processor does not fetch (spec.md §1, §7): that always fails with
// ProcessKind.
func (c *Context) Process(localContext interface{}) (*Context, error) {
	switch lc := localContext.(type) {
	case nil:
		return NewContext(c.base), nil
	case map[string]interface{}:
		result := c.Clone()
		if err := result.applyContextObject(lc); err != nil {
			return nil, err
		}
		return result, nil
	case []interface{}:
		result := c
		for _, entry := range lc {
			next, err := result.Process(entry)
			if err != nil {
				return nil, err
			}
			result = next
		}
		return result, nil
	case string:
		return nil, newError(ProcessKind, "remote context requested (unsupported)", lc)
	default:
		return nil, newError(ProcessKind, "invalid local context", localContext)
	}
}

// applyContextObject applies every (key, value) entry of contextMap to c
// in place, per spec.md §4.A "Per-entry semantics".
func (c *Context) applyContextObject(contextMap map[string]interface{}) error {
	for _, term := range orderedKeys(contextMap) {
		if IsKeyword(term) {
			continue
		}
		value := contextMap[term]

		if value == nil {
			delete(c.terms, term)
			continue
		}

		if idStr, isString := value.(string); isString {
			resolved, err := c.resolvePrefix(idStr, contextMap, nil)
			if err != nil {
				return err
			}
			c.terms[term] = &TermDefinition{ID: resolved}
			continue
		}

		defMap, isMap := value.(map[string]interface{})
		if !isMap {
			return newError(ProcessKind, "term definition must be a string, object, or null", value)
		}

		def := &TermDefinition{}

		if idVal, hasID := defMap["@id"]; hasID {
			idStr, isString := idVal.(string)
			if !isString {
				return newError(ProcessKind, "@id in a term definition must be a string", idVal)
			}
			resolved, err := c.resolvePrefix(idStr, contextMap, nil)
			if err != nil {
				return err
			}
			def.ID = resolved
		}

		if typeVal, hasType := defMap["@type"]; hasType {
			typeStr, isString := typeVal.(string)
			if !isString {
				return newError(ProcessKind, "@type in a term definition must be a string", typeVal)
			}
			resolved, err := c.resolvePrefix(typeStr, contextMap, nil)
			if err != nil {
				return err
			}
			def.Type = resolved
		}

		if langVal, hasLang := defMap["@language"]; hasLang && def.Type == "" {
			langStr, isString := langVal.(string)
			if !isString {
				return newError(ProcessKind, "@language in a term definition must be a string", langVal)
			}
			def.Language = langStr
			def.LanguageSet = true
		}

		if containerVal, hasContainer := defMap["@container"]; hasContainer {
			switch containerVal {
			case "@list":
				def.Container = "list"
			case "@set":
				def.Container = "set"
			// any other @container value is simply not accepted; the term
			// definition still stands, just without a container coercion.
			}
		}

		delete(c.terms, term)
		c.terms[term] = def
	}
	return nil
}

// resolvePrefix is the "Prefix expansion" procedure of spec.md §4.A: it
// resolves a (possibly compact) IRI string against the local context
// object currently being processed and, failing that, the active context
// built up so far. path tracks the prefixes visited on the current
// recursion so cycles can be reported and rejected.
func (c *Context) resolvePrefix(s string, localContext map[string]interface{}, path []string) (string, error) {
	prefix, suffix, ok := splitPrefix(s)
	if !ok {
		return s, nil
	}

	for _, seen := range path {
		if seen == prefix {
			return "", newError(ProcessKind,
				fmt.Sprintf("cyclic context reference: %s", strings.Join(append(path, prefix), " -> ")), s)
		}
	}
	path = append(append([]string{}, path...), prefix)

	if pendingVal, defined := localContext[prefix]; defined {
		switch pv := pendingVal.(type) {
		case string:
			resolved, err := c.resolvePrefix(pv, localContext, path)
			if err != nil {
				return "", err
			}
			return resolved + suffix, nil
		case map[string]interface{}:
			if idVal, hasID := pv["@id"].(string); hasID {
				resolved, err := c.resolvePrefix(idVal, localContext, path)
				if err != nil {
					return "", err
				}
				return resolved + suffix, nil
			}
		}
	}

	if def, defined := c.terms[prefix]; defined && def.ID != "" {
		return def.ID + suffix, nil
	}

	return s, nil
}

// ExpandIri expands s to an absolute IRI using c (spec.md §4.B, the
// shared expandIri helper).
//
// allowRelative controls step 3: whether a string that is neither a term
// nor already IRI-shaped is resolved against the base IRI (used for @id
// values) or returned unchanged (used for property keys, where an
// unmapped term is simply dropped by the caller).
func (c *Context) ExpandIri(s string, allowRelative bool) string {
	// 1)
	if def, defined := c.terms[s]; defined && def.ID != "" {
		return def.ID
	}

	// 2)
	if idx := strings.IndexByte(s, ':'); idx > 0 {
		if isAbsoluteIRI(s) {
			return s
		}
		if isBlankNodeLabel(s) {
			return s
		}
		prefix, suffix, ok := splitPrefix(s)
		if ok {
			if def, defined := c.terms[prefix]; defined && def.ID != "" {
				return def.ID + suffix
			}
		}
	}

	// 3)
	if allowRelative {
		return c.base + s
	}

	// 4)
	return s
}

// ExpandValue implements spec.md §4.B's expandValue(v, activeProperty, ctx)
// for a scalar (or null) v encountered under activeProperty.
//
// Per spec.md §8's worked scenarios S1 and S4, a bare string value always
// becomes a value object (with @language attached when one applies), not
// just when a language applies — the §4.B prose ("otherwise return v
// unchanged") undershoots its own examples; the examples win (see
// DESIGN.md). Non-string scalars (numbers, bools) and nil are returned
// unchanged when no type coercion applies, matching both the prose and
// the examples (neither exercises this case with a type-free number).
func (c *Context) ExpandValue(v interface{}, activeProperty string) (interface{}, error) {
	def := c.terms[activeProperty]

	if def != nil && def.Type != "" {
		if def.Type == identifierType {
			strVal, isString := v.(string)
			if !isString {
				return nil, newError(SyntaxKind, "identifier-typed property requires a string value", v)
			}
			return map[string]interface{}{"@id": c.ExpandIri(strVal, true)}, nil
		}
		return map[string]interface{}{"@value": v, "@type": def.Type}, nil
	}

	if strVal, isString := v.(string); isString {
		if lang, hasLang := c.propertyLanguage(activeProperty); hasLang {
			return map[string]interface{}{"@value": strVal, "@language": lang}, nil
		}
		return map[string]interface{}{"@value": strVal}, nil
	}

	return v, nil
}

// propertyLanguage resolves the language that applies to string values of
// activeProperty: the term's own @language if set, else the context's
// default language, else none.
func (c *Context) propertyLanguage(activeProperty string) (string, bool) {
	if def := c.terms[activeProperty]; def != nil && def.LanguageSet {
		return def.Language, true
	}
	return c.language, c.languageSet
}

// hasIdentifierType returns true if activeProperty is defined with
// @type: @id, meaning an identifier-object compacts straight to its @id
// string rather than staying wrapped.
func (c *Context) hasIdentifierType(activeProperty string) bool {
	def := c.terms[activeProperty]
	return def != nil && def.Type == identifierType
}

// HasListContainer returns true if activeProperty is defined with
// @container: @list.
func (c *Context) HasListContainer(activeProperty string) bool {
	def := c.terms[activeProperty]
	return def != nil && def.Container == "list"
}

// HasSetContainer returns true if activeProperty is defined with
// @container: @set.
func (c *Context) HasSetContainer(activeProperty string) bool {
	def := c.terms[activeProperty]
	return def != nil && def.Container == "set"
}

// CompactIRI is the shortest-matching selection of spec.md §4.C: among
// every term whose id is a prefix of (or equal to) iri, it returns a
// perfect match immediately if one exists, else the shortest-then-
// lexicographically-least compact IRI candidate, else iri itself.
//
// optimize is accepted for interface fidelity with spec.md §4.C's
// compactIri(iri, ctx, optimize) signature; no step of the documented
// algorithm branches on it, so it has no effect here (see DESIGN.md).
func (c *Context) CompactIRI(iri string, optimize bool) string {
	_ = optimize

	terms := make([]string, 0, len(c.terms))
	for term := range c.terms {
		terms = append(terms, term)
	}
	sortShortestLeast(terms) // deterministic perfect-match scan order

	var candidates []string
	for _, term := range terms {
		def := c.terms[term]
		if def == nil || def.ID == "" {
			continue
		}
		if def.ID == iri {
			return term
		}
		if strings.HasPrefix(iri, def.ID) {
			candidates = append(candidates, term+":"+iri[len(def.ID):])
		}
	}

	if len(candidates) == 0 {
		return iri
	}
	sortShortestLeast(candidates)
	return candidates[0]
}

// CompactValue implements spec.md §4.C's compactValue(v, activeProperty,
// ctx, toRelative). toRelative is omitted: the documented algorithm never
// distinguishes a "relative" compaction mode for compactIri in this
// simplified (no-@vocab) context model (see DESIGN.md).
func (c *Context) CompactValue(v map[string]interface{}, activeProperty string) interface{} {
	def := c.terms[activeProperty]

	if def != nil && def.Type == identifierType {
		if id, hasID := v["@id"].(string); hasID {
			return c.CompactIRI(id, false)
		}
	}

	if def != nil && def.Type != "" {
		if typeVal, hasType := v["@type"]; hasType && typeVal == def.Type {
			if value, hasValue := v["@value"]; hasValue {
				return value
			}
		}
	}

	if value, hasValue := v["@value"]; hasValue {
		lang, hasLang := v["@language"]
		propLang, propHasLang := c.propertyLanguage(activeProperty)
		onlyValue := len(v) == 1
		languageMatches := hasLang && propHasLang && lang == propLang
		if onlyValue || languageMatches {
			return value
		}
	}

	if list, hasList := v["@list"]; hasList {
		return list
	}

	if typeVal, hasType := v["@type"].(string); hasType {
		cp := make(map[string]interface{}, len(v))
		for k, val := range v {
			cp[k] = val
		}
		cp["@type"] = c.CompactIRI(typeVal, false)
		return cp
	}

	return v
}
