/*
 * tristore
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package graph

import (
	"github.com/krotik/tristore/graph/data"
)

/*
Diff returns the set of subjects whose SPO sub-index differs between g
and other. Used for change tracking between graph generations.
*/
func (g *indexedGraph) Diff(other Graph) map[data.Node]bool {
	og, ok := other.(*indexedGraph)
	if !ok {
		og = &indexedGraph{}
	}

	res := make(map[data.Node]bool)

	for s, preds := range g.spo {
		if !equalSubjectPreds(preds, og.spo[s]) {
			res[s] = true
		}
	}

	for s, preds := range og.spo {
		if _, seen := res[s]; seen {
			continue
		}
		if !equalSubjectPreds(g.spo[s], preds) {
			res[s] = true
		}
	}

	return res
}

/*
equalSubjectPreds compares two predicate->object->count maps for a single
subject for full equality, including multiplicities.
*/
func equalSubjectPreds(a, b map[data.Predicate]map[data.Node]uint64) bool {
	if len(a) != len(b) {
		return false
	}

	for p, aObjs := range a {
		bObjs, ok := b[p]
		if !ok || len(aObjs) != len(bObjs) {
			return false
		}

		for o, cnt := range aObjs {
			if bObjs[o] != cnt {
				return false
			}
		}
	}

	return true
}
