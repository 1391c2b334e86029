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

// XSD datatype IRIs, for use as a TermDefinition.Type value or directly in
// a value object's @type (spec.md §3, identifier-or-datatype coercion).
// The RDF vocabulary and list-structure constants the teacher also defines
// here (RDFFirst, RDFRest, RDFList, ...) only matter to RDF dataset
// construction, which this module doesn't implement; they're dropped.
const (
	xsdNS string = "http://www.w3.org/2001/XMLSchema#"

	XSDBoolean string = xsdNS + "boolean"
	XSDDouble  string = xsdNS + "double"
	XSDInteger string = xsdNS + "integer"
	XSDFloat   string = xsdNS + "float"
	XSDDecimal string = xsdNS + "decimal"
	XSDAnyURI  string = xsdNS + "anyURI"
	XSDString  string = xsdNS + "string"
)
