/*
 * tristore
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package transitive

import (
	"sort"
	"strings"

	"github.com/krotik/common/datautil"
)

/*
Resolver computes and caches predicate-specific transitive closures. A
Resolver is safe for concurrent use - the underlying cache protects
itself with a mutex - but each predicate's closure is only cached within
a single Resolver instance, so callers that need cache reuse across
calls should keep one Resolver around rather than constructing a fresh
one per query.
*/
type Resolver struct {
	cache *datautil.MapCache
}

/*
NewResolver creates a Resolver with a small closure cache (2 entries, no
expiry), sized for the common case of alternating queries over a
handful of hot predicates.
*/
func NewResolver() *Resolver {
	return &Resolver{cache: datautil.NewMapCache(2, 0)}
}

/*
closureOf returns the transitive closure of M, computing and caching it
if this exact M was not already seen.
*/
func (r *Resolver) closureOf(M objectSubjects) objectSubjects {
	key := canonicalKey(M)

	if v, ok := r.cache.Get(key); ok {
		return v.(objectSubjects)
	}

	Mstar := closure(M)
	r.cache.Put(key, Mstar)

	return Mstar
}

/*
canonicalKey deterministically encodes an object->subjects map as a
string, suitable as a cache key. Both the object keys and each object's
subject set are sorted first so that two structurally identical maps
always produce the same key.
*/
func canonicalKey(M objectSubjects) string {
	type entry struct {
		key  string
		subs []string
	}

	entries := make([]entry, 0, len(M))
	for o, subSet := range M {
		subs := make([]string, 0, len(subSet))
		for s := range subSet {
			subs = append(subs, s.String())
		}
		sort.Strings(subs)
		entries = append(entries, entry{key: o.String(), subs: subs})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.key)
		b.WriteByte(':')
		b.WriteString(strings.Join(e.subs, ","))
		b.WriteByte(';')
	}

	return b.String()
}
