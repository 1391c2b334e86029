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
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pquerna/cachecontrol"
)

// acceptHeader prefers JSON-LD, falling back to plain JSON.
const acceptHeader = "application/ld+json, application/json;q=0.9, */*;q=0.1"

// ContextLoader knows how to fetch a remote local-context document. It is
// never called by Context.Process itself (spec.md §1, §7: the core never
// performs network I/O); an embedding application that wants to support a
// string-valued @context entry fetches it through a ContextLoader and
// feeds the resulting object back into Process as an ordinary local
// context, or as one entry of a []interface{} local context.
type ContextLoader interface {
	LoadContext(u string) (interface{}, error)
}

type cachedContext struct {
	document     interface{}
	expireTime   time.Time
	neverExpires bool
}

// HTTPContextLoader is a ContextLoader backed by net/http, honoring
// RFC 7234 cache-control response headers via cachecontrol so repeated
// references to the same remote context (a common pattern — many
// documents share one vocabulary context) don't refetch it needlessly.
// Adapted from the teacher's RFC7324CachingDocumentLoader.
type HTTPContextLoader struct {
	httpClient *http.Client
	cache      map[string]*cachedContext
}

// NewHTTPContextLoader returns an HTTPContextLoader using httpClient, or
// http.DefaultClient if httpClient is nil.
func NewHTTPContextLoader(httpClient *http.Client) *HTTPContextLoader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPContextLoader{
		httpClient: httpClient,
		cache:      make(map[string]*cachedContext),
	}
}

// LoadContext fetches u and returns its decoded body. If the body is an
// object with a top-level "@context" key, that key's value is returned
// instead of the whole object, so the result can be fed straight into
// Context.Process.
func (l *HTTPContextLoader) LoadContext(u string) (interface{}, error) {
	now := time.Now()
	if entry, cached := l.cache[u]; cached && (entry.neverExpires || entry.expireTime.After(now)) {
		return entry.document, nil
	}

	req, err := http.NewRequest(http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, newError(ProcessKind, "building remote context request failed: "+err.Error(), u)
	}
	req.Header.Set("Accept", acceptHeader)

	res, err := l.httpClient.Do(req)
	if err != nil {
		return nil, newError(ProcessKind, "fetching remote context failed: "+err.Error(), u)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, newError(ProcessKind, fmt.Sprintf("remote context returned status %d", res.StatusCode), u)
	}

	var body interface{}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, newError(ParseKind, "invalid JSON in remote context: "+err.Error(), u)
	}

	document := body
	if obj, isObject := body.(map[string]interface{}); isObject {
		if lc, hasContext := obj["@context"]; hasContext {
			document = lc
		}
	}

	reasons, expireTime, ccErr := cachecontrol.CachableResponse(req, res, cachecontrol.Options{})
	if ccErr == nil && len(reasons) == 0 {
		l.cache[u] = &cachedContext{document: document, expireTime: expireTime}
	}

	return document, nil
}
