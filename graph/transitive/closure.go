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
	"github.com/krotik/tristore/graph"
	"github.com/krotik/tristore/graph/data"
)

/*
objectSubjects is an object -> subjects map for a single predicate,
built directly from its POS projection.
*/
type objectSubjects map[data.Node]map[data.Node]bool

/*
buildM builds the direct object -> subjects map for predicate p: M[o]
holds every s such that (s, p, o) is a triple in g.
*/
func buildM(g graph.Graph, p data.Predicate) objectSubjects {
	pat := data.Pattern{S: data.Unbound(), P: data.BoundPred(p), O: data.Unbound()}

	M := objectSubjects{}
	for _, b := range g.Resolve(pat) {
		s := b[0].(data.Node)
		o := b[1].(data.Node)

		if M[o] == nil {
			M[o] = map[data.Node]bool{}
		}
		M[o][s] = true
	}

	return M
}

/*
closure computes the transitive closure of M by iterative fixed point:
repeatedly, for every o and every s in M[o], if s is itself a key of M,
merge M[s] into M[o]. Stops when a full pass makes no change.
*/
func closure(M objectSubjects) objectSubjects {
	result := make(objectSubjects, len(M))
	for o, subs := range M {
		newSubs := make(map[data.Node]bool, len(subs))
		for s := range subs {
			newSubs[s] = true
		}
		result[o] = newSubs
	}

	for changed := true; changed; {
		changed = false

		for _, subs := range result {
			for s := range subs {
				if inner, ok := result[s]; ok {
					for s2 := range inner {
						if !subs[s2] {
							subs[s2] = true
							changed = true
						}
					}
				}
			}
		}
	}

	return result
}

/*
observedNodes returns every node that appears in M, either as an object
key or as a member of some object's subject set.
*/
func observedNodes(M objectSubjects) map[data.Node]bool {
	nodes := map[data.Node]bool{}
	for o, subs := range M {
		nodes[o] = true
		for s := range subs {
			nodes[s] = true
		}
	}
	return nodes
}

/*
starAugment returns a copy of Mstar with a reflexive entry n -> {n} added
for every node in observed, per the :star semantics of predicate-specific
closure.
*/
func starAugment(Mstar objectSubjects, observed map[data.Node]bool) objectSubjects {
	out := make(objectSubjects, len(Mstar))
	for o, subs := range Mstar {
		newSubs := make(map[data.Node]bool, len(subs))
		for s := range subs {
			newSubs[s] = true
		}
		out[o] = newSubs
	}

	for n := range observed {
		if out[n] == nil {
			out[n] = map[data.Node]bool{}
		}
		out[n][n] = true
	}

	return out
}

/*
projectClosure reads the (s', o') pairs implied by Mstar for the three
predicate-specific-closure shapes.
*/
func projectClosure(sh shape, pat data.Pattern, Mstar objectSubjects) []data.Binding {
	var out []data.Binding

	switch sh {

	case shapeQVQ: // p bound; s, o unbound: all (s', o') with s' in M*[o']
		for o, subs := range Mstar {
			for s := range subs {
				out = append(out, data.Binding{s, o})
			}
		}

	case shapeQVV: // p, o bound; s unbound: subjects M*[o]
		o := pat.O.Node()
		for s := range Mstar[o] {
			out = append(out, data.Binding{s})
		}

	case shapeVVQ: // s, p bound; o unbound: objects {o' | s in M*[o']}
		s := pat.S.Node()
		for o, subs := range Mstar {
			if subs[s] {
				out = append(out, data.Binding{o})
			}
		}
	}

	return out
}
