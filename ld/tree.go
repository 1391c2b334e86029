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
	"sort"
	"strings"
)

// Node is the generic tree value this package operates on (spec.md §3):
// nil, bool, float64/json.Number, string, []interface{}, or
// map[string]interface{}. There is no dedicated sum type — like the
// teacher, and like encoding/json itself, the tree is represented with
// Go's own dynamic JSON shapes and inspected with the predicates below,
// rather than introduced as a hand-rolled variant type.

// reservedKeys holds every key with semantics in this package (spec.md §3).
// Unlike full JSON-LD, there is no @base/@vocab/@reverse/@index/@nest/etc.
var reservedKeys = map[string]bool{
	"@context":   true,
	"@id":        true,
	"@value":     true,
	"@language":  true,
	"@type":      true,
	"@container": true,
	"@list":      true,
	"@set":       true,
}

// IsKeyword returns true if key is one of the reserved keys this package
// gives meaning to.
func IsKeyword(key string) bool {
	return reservedKeys[key]
}

// Arrayify returns v unchanged if it is already an array, otherwise wraps
// it in a single-element array.
func Arrayify(v interface{}) []interface{} {
	if av, isArray := v.([]interface{}); isArray {
		return av
	}
	return []interface{}{v}
}

// IsValueObject returns true if v is an object carrying @value.
func IsValueObject(v interface{}) bool {
	m, isMap := v.(map[string]interface{})
	if !isMap {
		return false
	}
	_, hasValue := m["@value"]
	return hasValue
}

// IsListObject returns true if v is an object carrying @list.
func IsListObject(v interface{}) bool {
	m, isMap := v.(map[string]interface{})
	if !isMap {
		return false
	}
	_, hasList := m["@list"]
	return hasList
}

// IsSetObject returns true if v is an object carrying @set.
func IsSetObject(v interface{}) bool {
	m, isMap := v.(map[string]interface{})
	if !isMap {
		return false
	}
	_, hasSet := m["@set"]
	return hasSet
}

// IsIdentifierObject returns true if v is an object whose only key is @id.
func IsIdentifierObject(v interface{}) bool {
	m, isMap := v.(map[string]interface{})
	if !isMap {
		return false
	}
	_, hasID := m["@id"]
	return hasID && len(m) == 1
}

// mergeIntoProperty ensures obj[key] is an array and appends value to it,
// per spec.md §4.B "merge-into-property": expansion never deduplicates,
// it just accumulates.
func mergeIntoProperty(obj map[string]interface{}, key string, value interface{}) {
	values, _ := obj[key].([]interface{})
	obj[key] = append(values, value)
}

// compareShortestLeast orders a before b by length, then lexicographically
// (spec.md §4.C, §8 property 6).
func compareShortestLeast(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// shortestLeast sorts strings shortest-first, ties broken lexicographically.
type shortestLeast []string

func (s shortestLeast) Len() int      { return len(s) }
func (s shortestLeast) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s shortestLeast) Less(i, j int) bool {
	return compareShortestLeast(s[i], s[j])
}

// sortShortestLeast sorts terms in place using shortest-then-lexicographic
// ordering.
func sortShortestLeast(terms []string) {
	sort.Sort(shortestLeast(terms))
}

// orderedKeys returns m's keys in sorted order, so context processing,
// expansion and compaction walk object keys deterministically despite Go's
// randomized map iteration.
func orderedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// splitPrefix splits s at its first ':', returning ok=false if there is
// none. A leading "//" immediately after the colon (as in "http://...")
// or a "_" prefix (a blank-node label) is reported as having no usable
// prefix/suffix split, per spec.md §4.B step 2 and the GLOSSARY.
func splitPrefix(s string) (prefix, suffix string, ok bool) {
	idx := strings.IndexByte(s, ':')
	if idx <= 0 {
		return "", "", false
	}
	prefix, suffix = s[:idx], s[idx+1:]
	if strings.HasPrefix(suffix, "//") || prefix == "_" {
		return "", "", false
	}
	return prefix, suffix, true
}

// isAbsoluteIRI reports whether value has the "scheme://" shape that
// marks it as already-absolute (spec.md §4.B step 2, GLOSSARY "IRI").
func isAbsoluteIRI(value string) bool {
	idx := strings.IndexByte(value, ':')
	return idx > 0 && strings.HasPrefix(value[idx+1:], "//")
}

// isBlankNodeLabel reports whether value has the "_:name" shape
// (GLOSSARY "Blank-node label").
func isBlankNodeLabel(value string) bool {
	return strings.HasPrefix(value, "_:")
}
