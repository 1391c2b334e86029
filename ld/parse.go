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
	"bytes"
	"encoding/json"
	"unicode/utf8"
)

// Parse decodes raw JSON text into the generic tree this package operates
// on (spec.md §6). An empty (or whitespace-only) input returns a nil tree
// and no error. Malformed UTF-8, JSON syntax errors, and a document
// nesting deeper than opts' max depth are all reported as ParseKind.
func Parse(raw []byte, opts *Options) (interface{}, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	if !utf8.Valid(raw) {
		return nil, newError(ParseKind, "invalid UTF-8", nil)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var tree interface{}
	if err := dec.Decode(&tree); err != nil {
		return nil, newError(ParseKind, "invalid JSON: "+err.Error(), nil)
	}

	if err := checkDepth(tree, 0, opts.maxDepth()); err != nil {
		return nil, err
	}

	return tree, nil
}

// checkDepth walks tree, failing with ParseKind once nesting exceeds max.
func checkDepth(node interface{}, depth, max int) error {
	if depth > max {
		return newError(ParseKind, "max-depth exceeded", nil)
	}
	switch v := node.(type) {
	case map[string]interface{}:
		for _, value := range v {
			if err := checkDepth(value, depth+1, max); err != nil {
				return err
			}
		}
	case []interface{}:
		for _, value := range v {
			if err := checkDepth(value, depth+1, max); err != nil {
				return err
			}
		}
	}
	return nil
}
