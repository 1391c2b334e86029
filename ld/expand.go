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

import "strings"

// Expand implements spec.md §4.B: it turns node, read under ctx with the
// given activeProperty, into its expanded form. activeProperty is "" at
// the top of a document.
func Expand(node interface{}, ctx *Context, activeProperty string) (interface{}, error) {
	switch v := node.(type) {
	case []interface{}:
		return expandArray(v, ctx, activeProperty)
	case map[string]interface{}:
		return expandObject(v, ctx, activeProperty)
	default:
		// Scalar (bool, float64, json.Number, string) or nil: delegate to
		// expandValue.
		return ctx.ExpandValue(v, activeProperty)
	}
}

// expandArray expands each element, dropping Null results and flattening
// nested arrays into the result — unless activeProperty has a list
// container, in which case a nested array is kept as one element (spec.md
// §4.B, Array case).
func expandArray(arr []interface{}, ctx *Context, activeProperty string) ([]interface{}, error) {
	result := []interface{}{}
	for _, item := range arr {
		if item == nil {
			continue
		}
		expanded, err := Expand(item, ctx, activeProperty)
		if err != nil {
			return nil, err
		}
		if expanded == nil {
			continue
		}
		if expandedList, isArray := expanded.([]interface{}); isArray {
			if ctx.HasListContainer(activeProperty) {
				result = append(result, expandedList)
			} else {
				result = append(result, expandedList...)
			}
			continue
		}
		result = append(result, expanded)
	}
	return result, nil
}

// expandObject expands a single object node per spec.md §4.B, Object case.
func expandObject(obj map[string]interface{}, ctx *Context, activeProperty string) (interface{}, error) {
	if lc, hasContext := obj["@context"]; hasContext {
		next, err := ctx.Process(lc)
		if err != nil {
			return nil, err
		}
		ctx = next
	}

	result := map[string]interface{}{}

	for _, key := range orderedKeys(obj) {
		if key == "@context" {
			continue
		}
		value := obj[key]
		expandedKey := ctx.ExpandIri(key, false)

		if value == nil && expandedKey != "@value" {
			continue
		}

		if !IsKeyword(expandedKey) && !strings.Contains(expandedKey, ":") {
			// Not a reserved keyword and didn't expand to an absolute-ish
			// IRI: an unmapped term. Drop it.
			continue
		}

		var err error
		switch expandedKey {
		case "@id":
			err = expandID(result, value)
		case "@type":
			err = expandType(result, value, ctx)
		case "@value":
			err = expandReservedScalar(result, "@value", value)
		case "@language":
			err = expandReservedScalar(result, "@language", value)
		case "@list", "@set":
			err = expandListOrSet(result, expandedKey, value, ctx, activeProperty)
		default:
			err = expandProperty(result, expandedKey, key, value, ctx)
		}
		if err != nil {
			return nil, err
		}
	}

	return postExpand(result)
}

func expandID(result map[string]interface{}, value interface{}) error {
	if _, duplicate := result["@id"]; duplicate {
		return newError(SyntaxKind, "duplicate @id", value)
	}
	strVal, isString := value.(string)
	if !isString {
		return newError(SyntaxKind, "@id must be a string", value)
	}
	result["@id"] = strVal
	return nil
}

func expandType(result map[string]interface{}, value interface{}, ctx *Context) error {
	if _, duplicate := result["@type"]; duplicate {
		return newError(SyntaxKind, "duplicate @type", value)
	}
	switch tv := value.(type) {
	case string:
		result["@type"] = ctx.ExpandIri(tv, true)
	case []interface{}:
		expanded := []interface{}{}
		for _, item := range tv {
			itemStr, isString := item.(string)
			if !isString {
				return newError(SyntaxKind, "@type array elements must be strings", item)
			}
			iri := ctx.ExpandIri(itemStr, true)
			if iri == "" {
				continue
			}
			expanded = append(expanded, iri)
		}
		result["@type"] = expanded
	default:
		return newError(SyntaxKind, "@type must be a string or array of strings", value)
	}
	return nil
}

func expandReservedScalar(result map[string]interface{}, key string, value interface{}) error {
	if _, duplicate := result[key]; duplicate {
		return newError(SyntaxKind, "duplicate "+key, value)
	}
	switch value.(type) {
	case map[string]interface{}, []interface{}:
		return newError(SyntaxKind, key+" must be a scalar", value)
	}
	result[key] = value
	return nil
}

func expandListOrSet(result map[string]interface{}, key string, value interface{}, ctx *Context, activeProperty string) error {
	if _, duplicate := result[key]; duplicate {
		return newError(SyntaxKind, "duplicate "+key, value)
	}
	items := Arrayify(value)
	expanded := []interface{}{}
	for _, item := range items {
		e, err := Expand(item, ctx, activeProperty)
		if err != nil {
			return err
		}
		if e == nil {
			continue
		}
		if IsListObject(e) {
			return newError(SyntaxKind, "list of lists", item)
		}
		expanded = append(expanded, e)
	}
	result[key] = expanded
	return nil
}

// expandProperty expands a user property's value and merges it into
// result[expandedKey], honoring a list-container term definition (spec.md
// §4.B, "merge-into-property").
func expandProperty(result map[string]interface{}, expandedKey, term string, value interface{}, ctx *Context) error {
	var expanded interface{}
	var err error
	switch value.(type) {
	case map[string]interface{}, []interface{}:
		expanded, err = Expand(value, ctx, term)
	default:
		expanded, err = ctx.ExpandValue(value, term)
	}
	if err != nil {
		return err
	}
	if expanded == nil {
		return nil
	}

	if ctx.HasListContainer(term) && !IsListObject(expanded) {
		arr := Arrayify(expanded)
		for _, item := range arr {
			if IsListObject(item) {
				return newError(SyntaxKind, "list of lists", item)
			}
		}
		expanded = map[string]interface{}{"@list": arr}
	}

	mergeIntoProperty(result, expandedKey, expanded)
	return nil
}

// postExpand applies spec.md §4.B's "Post-pass on the resulting object":
// value-object well-formedness and the @set/@language collapse rules.
func postExpand(result map[string]interface{}) (interface{}, error) {
	if rawValue, hasValue := result["@value"]; hasValue {
		if typeVal, hasType := result["@type"]; hasType {
			if _, isString := typeVal.(string); !isString {
				return nil, newError(SyntaxKind, "@value's @type must be a single string", typeVal)
			}
		}
		allowed := map[string]bool{"@value": true, "@type": true, "@language": true}
		for k := range result {
			if !allowed[k] {
				return nil, newError(SyntaxKind, "value object has extraneous key "+k, k)
			}
		}
		if _, hasType := result["@type"]; hasType {
			if _, hasLang := result["@language"]; hasLang {
				return nil, newError(SyntaxKind, "value object has both @type and @language", result)
			}
		}
		if rawValue == nil {
			return nil, nil
		}
		if len(result) == 1 {
			return rawValue, nil
		}
		return result, nil
	}

	if _, hasLang := result["@language"]; hasLang {
		if len(result) == 1 {
			return nil, nil
		}
		delete(result, "@language")
	}

	if typeVal, hasType := result["@type"]; hasType {
		if _, isArray := typeVal.([]interface{}); !isArray {
			result["@type"] = []interface{}{typeVal}
		}
	}

	_, hasList := result["@list"]
	_, hasSet := result["@set"]
	if (hasList || hasSet) && len(result) > 1 {
		return nil, newError(SyntaxKind, "@list or @set object has extraneous keys", result)
	}

	if hasSet {
		return result["@set"], nil
	}

	return result, nil
}
