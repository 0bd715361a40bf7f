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
shape is one of the eight bound/unbound combinations a Pattern can take.
Resolve and Count are both dispatched on it, from the same table, so the
two stay trivially consistent with each other.
*/
type shape uint8

/*
Pattern shapes, named after which positions are ground (true) in
(s, p, o) order.
*/
const (
	shapeVVV shape = iota // (v,v,v)
	shapeVVQ               // (v,v,?)
	shapeVQV               // (v,?,v)
	shapeVQQ               // (v,?,?)
	shapeQVV               // (?,v,v)
	shapeQVQ               // (?,v,?)
	shapeQQV               // (?,?,v)
	shapeQQQ               // (?,?,?)
)

func patternShape(pat data.Pattern) shape {
	sb := !pat.S.IsVar()
	pb := !pat.P.IsVar()
	ob := !pat.O.IsVar()

	switch {
	case sb && pb && ob:
		return shapeVVV
	case sb && pb && !ob:
		return shapeVVQ
	case sb && !pb && ob:
		return shapeVQV
	case sb && !pb && !ob:
		return shapeVQQ
	case !sb && pb && ob:
		return shapeQVV
	case !sb && pb && !ob:
		return shapeQVQ
	case !sb && !pb && ob:
		return shapeQQV
	default:
		return shapeQQQ
	}
}

/*
Resolve returns the projection over the unbound positions of pat. Ordering
of the returned bindings is unspecified.
*/
func (g *indexedGraph) Resolve(pat data.Pattern) []data.Binding {
	var out []data.Binding

	switch patternShape(pat) {

	case shapeVVV:
		s, p, o := pat.S.Node(), pat.P.Pred(), pat.O.Node()
		if g.spo[s][p][o] > 0 {
			out = append(out, data.Binding{})
		}

	case shapeVVQ:
		s, p := pat.S.Node(), pat.P.Pred()
		for o, cnt := range g.spo[s][p] {
			for i := uint64(0); i < cnt; i++ {
				out = append(out, data.Binding{o})
			}
		}

	case shapeVQV:
		s, o := pat.S.Node(), pat.O.Node()
		for p, cnt := range g.osp[o][s] {
			for i := uint64(0); i < cnt; i++ {
				out = append(out, data.Binding{p})
			}
		}

	case shapeVQQ:
		s := pat.S.Node()
		for p, objs := range g.spo[s] {
			for o, cnt := range objs {
				for i := uint64(0); i < cnt; i++ {
					out = append(out, data.Binding{p, o})
				}
			}
		}

	case shapeQVV:
		p, o := pat.P.Pred(), pat.O.Node()
		for s, cnt := range g.pos[p][o] {
			for i := uint64(0); i < cnt; i++ {
				out = append(out, data.Binding{s})
			}
		}

	case shapeQVQ:
		p := pat.P.Pred()
		for o, subs := range g.pos[p] {
			for s, cnt := range subs {
				for i := uint64(0); i < cnt; i++ {
					out = append(out, data.Binding{s, o})
				}
			}
		}

	case shapeQQV:
		o := pat.O.Node()
		for s, preds := range g.osp[o] {
			for p, cnt := range preds {
				for i := uint64(0); i < cnt; i++ {
					out = append(out, data.Binding{s, p})
				}
			}
		}

	default: // shapeQQQ
		for s, preds := range g.spo {
			for p, objs := range preds {
				for o, cnt := range objs {
					for i := uint64(0); i < cnt; i++ {
						out = append(out, data.Binding{s, p, o})
					}
				}
			}
		}
	}

	return out
}

/*
Count returns the cardinality of Resolve(pat) without materializing it.
*/
func (g *indexedGraph) Count(pat data.Pattern) uint64 {
	var total uint64

	switch patternShape(pat) {

	case shapeVVV:
		s, p, o := pat.S.Node(), pat.P.Pred(), pat.O.Node()
		if g.spo[s][p][o] > 0 {
			total = 1
		}

	case shapeVVQ:
		s, p := pat.S.Node(), pat.P.Pred()
		for _, cnt := range g.spo[s][p] {
			total += cnt
		}

	case shapeVQV:
		s, o := pat.S.Node(), pat.O.Node()
		for _, cnt := range g.osp[o][s] {
			total += cnt
		}

	case shapeVQQ:
		s := pat.S.Node()
		for _, objs := range g.spo[s] {
			for _, cnt := range objs {
				total += cnt
			}
		}

	case shapeQVV:
		p, o := pat.P.Pred(), pat.O.Node()
		for _, cnt := range g.pos[p][o] {
			total += cnt
		}

	case shapeQVQ:
		p := pat.P.Pred()
		for _, subs := range g.pos[p] {
			for _, cnt := range subs {
				total += cnt
			}
		}

	case shapeQQV:
		o := pat.O.Node()
		for _, preds := range g.osp[o] {
			for _, cnt := range preds {
				total += cnt
			}
		}

	default: // shapeQQQ
		for _, preds := range g.spo {
			for _, objs := range preds {
				for _, cnt := range objs {
					total += cnt
				}
			}
		}
	}

	return total
}
