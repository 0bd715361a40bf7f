/*
 * tristore
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package graph contains the indexed graph and the transactor which
together form the core of the triple store.

Indexed graph

A Graph is an immutable value which holds three coordinated indexes over
(subject, predicate, object) triples: SPO, POS and OSP. Add and Delete
never mutate an existing Graph - they return a new one, structurally
sharing everything that did not change. When a write would be a no-op
(adding an already-present triple to a single-valued graph, or deleting
an absent one) the very same Graph value is returned, so callers can test
for an effective write with a plain == comparison.

Variants

A graph is either single-valued (at most one occurrence of any given
triple) or a multigraph (a bag, where re-asserting a triple increments its
count). NewGraph picks the variant at construction time.

Transactor

Transact folds a batch of assertions and retractions into a Graph,
returning the resulting Graph together with the datoms that were actually
applied - suppressing no-op assertions and retractions, per the identity
contract above.
*/
package graph

import (
	"github.com/krotik/tristore/graph/data"
)

/*
Variant selects the multiplicity semantics of a Graph.
*/
type Variant int

/*
Graph variants.
*/
const (
	Single Variant = iota
	Multi
)

/*
Graph is an immutable snapshot of the triple index.
*/
type Graph interface {

	/*
	   Variant returns the multiplicity variant of this graph.
	*/
	Variant() Variant

	/*
	   Empty returns a fresh, empty graph of the same variant as this one.
	*/
	Empty() Graph

	/*
	   Add returns a graph with (s, p, o) incorporated. Returns this same
	   graph, unchanged, if the triple is already present in a single-valued
	   graph. The transaction id tx is accepted but not recorded in the index.
	*/
	Add(s data.Node, p data.Predicate, o data.Node, tx uint64) Graph

	/*
	   Delete returns a graph with one occurrence of (s, p, o) removed (in a
	   multigraph this decrements its count). Returns this same graph,
	   unchanged, if the triple is absent.
	*/
	Delete(s data.Node, p data.Predicate, o data.Node) Graph

	/*
	   Resolve returns the projection over the unbound positions of pat.
	*/
	Resolve(pat data.Pattern) []data.Binding

	/*
	   Count returns the cardinality of Resolve(pat) without materializing it.
	*/
	Count(pat data.Pattern) uint64

	/*
	   Diff returns the set of subjects whose SPO sub-index differs between
	   this graph and other.
	*/
	Diff(other Graph) map[data.Node]bool
}

/*
spoIndex is subject -> predicate -> object -> count.
*/
type spoIndex map[data.Node]map[data.Predicate]map[data.Node]uint64

/*
posIndex is predicate -> object -> subject -> count.
*/
type posIndex map[data.Predicate]map[data.Node]map[data.Node]uint64

/*
ospIndex is object -> subject -> predicate -> count.
*/
type ospIndex map[data.Node]map[data.Node]map[data.Predicate]uint64

/*
indexedGraph is the persistent implementation of Graph. It is always used
behind a pointer so that an unchanged write can return the exact same
value, making the "same graph" identity contract a native pointer
comparison.
*/
type indexedGraph struct {
	variant Variant
	spo     spoIndex
	pos     posIndex
	osp     ospIndex
}

/*
NewGraph creates a new, empty Graph of the given variant.
*/
func NewGraph(variant Variant) Graph {
	return &indexedGraph{
		variant: variant,
		spo:     spoIndex{},
		pos:     posIndex{},
		osp:     ospIndex{},
	}
}

func (g *indexedGraph) Variant() Variant {
	return g.variant
}

func (g *indexedGraph) Empty() Graph {
	return NewGraph(g.variant)
}

func (g *indexedGraph) Add(s data.Node, p data.Predicate, o data.Node, tx uint64) Graph {
	cur := g.spo[s][p][o]

	var next uint64
	if g.variant == Single {
		if cur > 0 {
			return g
		}
		next = 1
	} else {
		next = cur + 1
	}

	return &indexedGraph{
		variant: g.variant,
		spo:     setSPO(g.spo, s, p, o, next),
		pos:     setPOS(g.pos, p, o, s, next),
		osp:     setOSP(g.osp, o, s, p, next),
	}
}

func (g *indexedGraph) Delete(s data.Node, p data.Predicate, o data.Node) Graph {
	cur := g.spo[s][p][o]

	if cur == 0 {
		return g
	}

	next := cur - 1

	return &indexedGraph{
		variant: g.variant,
		spo:     setSPO(g.spo, s, p, o, next),
		pos:     setPOS(g.pos, p, o, s, next),
		osp:     setOSP(g.osp, o, s, p, next),
	}
}

/*
setSPO returns a copy of idx with idx[s][p][o] set to count (or removed,
pruning empty parents, if count is 0). Only the path from the root to the
touched leaf is cloned - every other branch is shared with idx.
*/
func setSPO(idx spoIndex, s data.Node, p data.Predicate, o data.Node, count uint64) spoIndex {
	newIdx := make(spoIndex, len(idx))
	for k, v := range idx {
		newIdx[k] = v
	}

	mid := cloneMid2(idx[s])
	inner := cloneInner2(mid[p])

	if count == 0 {
		delete(inner, o)
	} else {
		inner[o] = count
	}

	if len(inner) == 0 {
		delete(mid, p)
	} else {
		mid[p] = inner
	}

	if len(mid) == 0 {
		delete(newIdx, s)
	} else {
		newIdx[s] = mid
	}

	return newIdx
}

func cloneMid2(m map[data.Predicate]map[data.Node]uint64) map[data.Predicate]map[data.Node]uint64 {
	newM := make(map[data.Predicate]map[data.Node]uint64, len(m))
	for k, v := range m {
		newM[k] = v
	}
	return newM
}

func cloneInner2(m map[data.Node]uint64) map[data.Node]uint64 {
	newM := make(map[data.Node]uint64, len(m))
	for k, v := range m {
		newM[k] = v
	}
	return newM
}

func setPOS(idx posIndex, p data.Predicate, o data.Node, s data.Node, count uint64) posIndex {
	newIdx := make(posIndex, len(idx))
	for k, v := range idx {
		newIdx[k] = v
	}

	mid := cloneMid3(idx[p])
	inner := cloneInner2(mid[o])

	if count == 0 {
		delete(inner, s)
	} else {
		inner[s] = count
	}

	if len(inner) == 0 {
		delete(mid, o)
	} else {
		mid[o] = inner
	}

	if len(mid) == 0 {
		delete(newIdx, p)
	} else {
		newIdx[p] = mid
	}

	return newIdx
}

func cloneMid3(m map[data.Node]map[data.Node]uint64) map[data.Node]map[data.Node]uint64 {
	newM := make(map[data.Node]map[data.Node]uint64, len(m))
	for k, v := range m {
		newM[k] = v
	}
	return newM
}

func setOSP(idx ospIndex, o data.Node, s data.Node, p data.Predicate, count uint64) ospIndex {
	newIdx := make(ospIndex, len(idx))
	for k, v := range idx {
		newIdx[k] = v
	}

	mid := cloneMid4(idx[o])
	inner := cloneInner3(mid[s])

	if count == 0 {
		delete(inner, p)
	} else {
		inner[p] = count
	}

	if len(inner) == 0 {
		delete(mid, s)
	} else {
		mid[s] = inner
	}

	if len(mid) == 0 {
		delete(newIdx, o)
	} else {
		newIdx[o] = mid
	}

	return newIdx
}

func cloneMid4(m map[data.Node]map[data.Predicate]uint64) map[data.Node]map[data.Predicate]uint64 {
	newM := make(map[data.Node]map[data.Predicate]uint64, len(m))
	for k, v := range m {
		newM[k] = v
	}
	return newM
}

func cloneInner3(m map[data.Predicate]uint64) map[data.Predicate]uint64 {
	newM := make(map[data.Predicate]uint64, len(m))
	for k, v := range m {
		newM[k] = v
	}
	return newM
}
