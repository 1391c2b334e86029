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

// Compact implements spec.md §4.C: it turns node, an expanded node already
// read under ctx, into its compact form under activeProperty.
// optimize is threaded through to CompactIRI for interface fidelity; see
// its doc comment in context.go. compactArrays mirrors the teacher's own
// Compact parameter of the same name (api_compact.go): when false, a
// single-element array is never collapsed to its lone element, regardless
// of container (Options.CompactArrays, options.go).
func Compact(node interface{}, ctx *Context, activeProperty string, optimize, compactArrays bool) (interface{}, error) {
	switch v := node.(type) {
	case []interface{}:
		return compactArray(v, ctx, activeProperty, optimize, compactArrays)
	case map[string]interface{}:
		return compactObject(v, ctx, activeProperty, optimize, compactArrays)
	default:
		return v, nil
	}
}

// compactArray compacts each element; a single-element result collapses to
// that element when compactArrays is set and activeProperty doesn't have a
// set container (spec.md §4.C, Array case, gated per Options.CompactArrays).
func compactArray(arr []interface{}, ctx *Context, activeProperty string, optimize, compactArrays bool) (interface{}, error) {
	result := []interface{}{}
	for _, item := range arr {
		compacted, err := Compact(item, ctx, activeProperty, optimize, compactArrays)
		if err != nil {
			return nil, err
		}
		result = append(result, compacted)
	}
	if compactArrays && len(result) == 1 && !ctx.HasSetContainer(activeProperty) {
		return result[0], nil
	}
	return result, nil
}

// compactObject compacts a single expanded node per spec.md §4.C, Object
// case.
func compactObject(obj map[string]interface{}, ctx *Context, activeProperty string, optimize, compactArrays bool) (interface{}, error) {
	if IsValueObject(obj) {
		return ctx.CompactValue(obj, activeProperty), nil
	}

	if IsIdentifierObject(obj) && ctx.hasIdentifierType(activeProperty) {
		return ctx.CompactIRI(obj["@id"].(string), optimize), nil
	}

	result := map[string]interface{}{}

	if idVal, hasID := obj["@id"]; hasID {
		if idStr, isString := idVal.(string); isString {
			result["@id"] = ctx.CompactIRI(idStr, optimize)
		}
	}

	if typeVal, hasType := obj["@type"]; hasType {
		compacted, err := compactType(typeVal, ctx, optimize)
		if err != nil {
			return nil, err
		}
		result["@type"] = compacted
	}

	if listVal, hasList := obj["@list"]; hasList {
		items, _ := listVal.([]interface{})
		compactedItems, err := compactArray(items, ctx, activeProperty, optimize, compactArrays)
		if err != nil {
			return nil, err
		}
		if ctx.HasListContainer(activeProperty) {
			return compactedItems, nil
		}
		result["@list"] = compactedItems
		return result, nil
	}

	for _, key := range orderedKeys(obj) {
		if key == "@id" || key == "@type" || key == "@list" {
			continue
		}
		values, isArray := obj[key].([]interface{})
		if !isArray {
			values = []interface{}{obj[key]}
		}
		compactedKey := ctx.CompactIRI(key, optimize)

		if ctx.HasListContainer(compactedKey) {
			// A list-container property's expanded form is always a
			// one-element array wrapping a single list object (spec.md
			// §4.B, the list-wrapping step); compacting that list object
			// already yields the final array, so it replaces the result
			// entry outright rather than being merged element by element.
			compacted, err := Compact(values[0], ctx, compactedKey, optimize, compactArrays)
			if err != nil {
				return nil, err
			}
			result[compactedKey] = compacted
			continue
		}

		for _, value := range values {
			compacted, err := Compact(value, ctx, compactedKey, optimize, compactArrays)
			if err != nil {
				return nil, err
			}
			mergeCompacted(result, compactedKey, compacted, ctx, compactedKey, compactArrays)
		}
	}

	return result, nil
}

func compactType(typeVal interface{}, ctx *Context, optimize bool) (interface{}, error) {
	switch tv := typeVal.(type) {
	case string:
		return ctx.CompactIRI(tv, optimize), nil
	case []interface{}:
		result := make([]interface{}, 0, len(tv))
		for _, item := range tv {
			itemStr, isString := item.(string)
			if !isString {
				return nil, newError(SyntaxKind, "@type array elements must be strings", item)
			}
			result = append(result, ctx.CompactIRI(itemStr, optimize))
		}
		if len(result) == 1 {
			return result[0], nil
		}
		return result, nil
	default:
		return nil, newError(SyntaxKind, "@type must be a string or array of strings", typeVal)
	}
}

// mergeCompacted stores a compacted value under key in result, keeping it
// as an array if the original term has a set container, if compactArrays is
// false (teacher's api_compact.go:113 applies the same "!compactArrays"
// condition), or if a value is already present under that key (spec.md
// §4.C, merge step). List containers are handled before this is ever
// called (see compactObject).
func mergeCompacted(result map[string]interface{}, key string, value interface{}, ctx *Context, term string, compactArrays bool) {
	existing, alreadyPresent := result[key]
	forceArray := ctx.HasSetContainer(term) || !compactArrays

	if !alreadyPresent {
		if forceArray {
			result[key] = []interface{}{value}
		} else {
			result[key] = value
		}
		return
	}

	arr, isArray := existing.([]interface{})
	if !isArray {
		arr = []interface{}{existing}
	}
	result[key] = append(arr, value)
}
